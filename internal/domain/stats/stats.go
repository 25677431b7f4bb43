package stats

import (
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/models"
)

// ===============================
// Agregados do dashboard
// ===============================

// Summary é o modelo de leitura derivado da coleção de ordens.
// É sempre recomputado do zero a partir da coleção atual — O(n),
// volume de uma gráfica é pequeno.
type Summary struct {
	Total      int                     `json:"total"`
	InProgress int                     `json:"inProgress"`
	Pending    int                     `json:"pending"`
	Completed  int                     `json:"completed"`
	Urgent     int                     `json:"urgent"`
	TotalValue float64                 `json:"totalValue"`
	ByStatus   map[workflow.Status]int `json:"byStatus"`
}

// Compute deriva as estatísticas do dashboard.
// totalValue soma todas as ordens, inclusive canceladas e concluídas.
func Compute(orders []models.ServiceOrder) Summary {
	s := Summary{
		ByStatus: make(map[workflow.Status]int),
	}

	for _, o := range orders {
		s.Total++
		s.ByStatus[o.Status]++
		s.TotalValue += o.TotalPrice

		switch o.Status {
		case workflow.StatusArte, workflow.StatusProducao, workflow.StatusAcabamento:
			s.InProgress++
		case workflow.StatusOrcamento, workflow.StatusAprovado:
			s.Pending++
		case workflow.StatusConcluido:
			s.Completed++
		}

		if o.Priority == workflow.PriorityUrgente {
			s.Urgent++
		}
	}

	return s
}
