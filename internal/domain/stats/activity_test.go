package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centurialsign/sgpg-api/internal/domain/stats"
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/models"
)

func TestClassifyPrecedence(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name  string
		order models.ServiceOrder
		want  stats.ActivityType
	}{
		{
			"concluido vence urgente",
			models.ServiceOrder{Status: workflow.StatusConcluido, Priority: workflow.PriorityUrgente},
			stats.ActivityCompleted,
		},
		{
			"cancelado vence urgente",
			models.ServiceOrder{Status: workflow.StatusCancelado, Priority: workflow.PriorityUrgente},
			stats.ActivityCancelled,
		},
		{
			"urgente em producao",
			models.ServiceOrder{Status: workflow.StatusProducao, Priority: workflow.PriorityUrgente},
			stats.ActivityUrgent,
		},
		{
			"atualizada depois de criada",
			models.ServiceOrder{
				Status:    workflow.StatusArte,
				Priority:  workflow.PriorityNormal,
				CreatedAt: now.Add(-time.Hour),
				UpdatedAt: now,
			},
			stats.ActivityUpdated,
		},
		{
			"recém criada",
			models.ServiceOrder{
				Status:    workflow.StatusOrcamento,
				Priority:  workflow.PriorityNormal,
				CreatedAt: now,
				UpdatedAt: now,
			},
			stats.ActivityCreated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stats.Classify(tc.order))
		})
	}
}

func TestBuildFeed(t *testing.T) {
	now := time.Now()

	orders := make([]models.ServiceOrder, 0, 15)
	for i := 0; i < 15; i++ {
		orders = append(orders, models.ServiceOrder{
			ID:        string(rune('a' + i)),
			OsNumber:  int64(i + 1),
			Title:     "Banner loja",
			Status:    workflow.StatusOrcamento,
			Priority:  workflow.PriorityNormal,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			UpdatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	feed := stats.BuildFeed(orders, 10)

	require.Len(t, feed, 10)

	// ordenado do mais recente para o mais antigo
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Time.After(feed[i-1].Time))
	}

	assert.Equal(t, "Nova ordem criada", feed[0].Subtitle)
	assert.Equal(t, int64(1), feed[0].OsNumber)
}

func TestBuildFeedSubtitles(t *testing.T) {
	now := time.Now()

	orders := []models.ServiceOrder{
		{Status: workflow.StatusConcluido, UpdatedAt: now},
		{Status: workflow.StatusCancelado, UpdatedAt: now.Add(-time.Minute)},
		{Status: workflow.StatusProducao, Priority: workflow.PriorityUrgente, UpdatedAt: now.Add(-2 * time.Minute)},
		{Status: workflow.StatusArte, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-3 * time.Minute)},
	}

	feed := stats.BuildFeed(orders, 10)
	require.Len(t, feed, 4)

	assert.Equal(t, "Ordem finalizada", feed[0].Subtitle)
	assert.Equal(t, "Ordem cancelada", feed[1].Subtitle)
	assert.Equal(t, "Marcada como urgente", feed[2].Subtitle)
	assert.Equal(t, "Status: arte", feed[3].Subtitle)
}

func TestFromHistory(t *testing.T) {
	now := time.Now()
	from := workflow.StatusRevisao

	o := &models.ServiceOrder{OsNumber: 42, Title: "Fachada padaria"}

	items := []models.OsStatusHistory{
		{
			ID:           "h3",
			ServiceOrder: o,
			FromStatus:   &from,
			ToStatus:     workflow.StatusConcluido,
			CreatedAt:    now,
		},
		{
			ID:           "h2",
			ServiceOrder: o,
			FromStatus:   &from,
			ToStatus:     workflow.StatusCancelado,
			CreatedAt:    now.Add(-time.Minute),
		},
		{
			ID:           "h1",
			ServiceOrder: o,
			FromStatus:   nil,
			ToStatus:     workflow.StatusOrcamento,
			CreatedAt:    now.Add(-time.Hour),
		},
		{
			// trilha órfã (ordem apagada) é ignorada
			ID:        "h0",
			ToStatus:  workflow.StatusArte,
			CreatedAt: now,
		},
	}

	feed := stats.FromHistory(items)
	require.Len(t, feed, 3)

	assert.Equal(t, stats.ActivityCompleted, feed[0].Type)
	assert.Equal(t, stats.ActivityCancelled, feed[1].Type)
	assert.Equal(t, stats.ActivityCreated, feed[2].Type)

	assert.Equal(t, int64(42), feed[0].OsNumber)
	assert.Equal(t, "Fachada padaria", feed[0].Title)
}
