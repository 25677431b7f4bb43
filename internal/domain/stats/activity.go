package stats

import (
	"sort"
	"time"

	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/models"
)

// ===============================
// Feed de atividades
// ===============================

type ActivityType string

const (
	ActivityCreated   ActivityType = "created"
	ActivityUpdated   ActivityType = "updated"
	ActivityCompleted ActivityType = "completed"
	ActivityUrgent    ActivityType = "urgent"
	ActivityCancelled ActivityType = "cancelled"
)

type Activity struct {
	ID       string       `json:"id"`
	Type     ActivityType `json:"type"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Time     time.Time    `json:"time"`
	OsNumber int64        `json:"os_number"`
}

// Classify reconstrói "o que provavelmente aconteceu" com a ordem a
// partir dos campos atuais, em precedência fixa:
// cancelado > concluído > prioridade urgente > updated_at > criação.
func Classify(o models.ServiceOrder) ActivityType {
	switch {
	case o.Status == workflow.StatusConcluido:
		return ActivityCompleted
	case o.Status == workflow.StatusCancelado:
		return ActivityCancelled
	case o.Priority == workflow.PriorityUrgente:
		return ActivityUrgent
	case o.UpdatedAt.After(o.CreatedAt):
		return ActivityUpdated
	default:
		return ActivityCreated
	}
}

func subtitle(t ActivityType, o models.ServiceOrder) string {
	switch t {
	case ActivityCreated:
		return "Nova ordem criada"
	case ActivityUpdated:
		return "Status: " + string(o.Status)
	case ActivityCompleted:
		return "Ordem finalizada"
	case ActivityUrgent:
		return "Marcada como urgente"
	case ActivityCancelled:
		return "Ordem cancelada"
	}
	return ""
}

// BuildFeed monta o feed heurístico a partir das ordens mais
// recentes (a coleção já chega ordenada por created_at DESC),
// reordenando por updated_at.
func BuildFeed(orders []models.ServiceOrder, limit int) []Activity {
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	feed := make([]Activity, 0, len(orders))
	for _, o := range orders {
		t := Classify(o)
		feed = append(feed, Activity{
			ID:       o.ID,
			Type:     t,
			Title:    o.Title,
			Subtitle: subtitle(t, o),
			Time:     o.UpdatedAt,
			OsNumber: o.OsNumber,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Time.After(feed[j].Time)
	})

	return feed
}

// FromHistory monta o feed a partir da trilha real de mudanças de
// status, quando ela existe (ordens antigas podem não ter trilha).
func FromHistory(items []models.OsStatusHistory) []Activity {
	feed := make([]Activity, 0, len(items))

	for _, h := range items {
		if h.ServiceOrder == nil {
			continue
		}

		t := ActivityUpdated
		switch {
		case h.FromStatus == nil:
			t = ActivityCreated
		case h.ToStatus == workflow.StatusConcluido:
			t = ActivityCompleted
		case h.ToStatus == workflow.StatusCancelado:
			t = ActivityCancelled
		}

		o := *h.ServiceOrder
		o.Status = h.ToStatus

		feed = append(feed, Activity{
			ID:       h.ID,
			Type:     t,
			Title:    o.Title,
			Subtitle: subtitle(t, o),
			Time:     h.CreatedAt,
			OsNumber: o.OsNumber,
		})
	}

	return feed
}
