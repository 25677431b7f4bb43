package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centurialsign/sgpg-api/internal/domain/stats"
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/models"
)

func order(status workflow.Status, priority workflow.Priority, total float64) models.ServiceOrder {
	return models.ServiceOrder{
		Status:     status,
		Priority:   priority,
		TotalPrice: total,
	}
}

func TestCompute(t *testing.T) {
	orders := []models.ServiceOrder{
		order(workflow.StatusOrcamento, workflow.PriorityNormal, 100),
		order(workflow.StatusOrcamento, workflow.PriorityUrgente, 250),
		order(workflow.StatusAprovado, workflow.PriorityBaixa, 80),
		order(workflow.StatusConcluido, workflow.PriorityNormal, 500),
		order(workflow.StatusCancelado, workflow.PriorityAlta, 70),
	}

	s := stats.Compute(orders)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 3, s.Pending)
	assert.Equal(t, 0, s.InProgress)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Urgent)

	// totalValue soma tudo, inclusive cancelada e concluída
	assert.InDelta(t, 1000.0, s.TotalValue, 1e-9)

	assert.Equal(t, 2, s.ByStatus[workflow.StatusOrcamento])
	assert.Equal(t, 1, s.ByStatus[workflow.StatusAprovado])
	assert.Equal(t, 1, s.ByStatus[workflow.StatusConcluido])
	assert.Equal(t, 1, s.ByStatus[workflow.StatusCancelado])
}

func TestComputeInProgress(t *testing.T) {
	orders := []models.ServiceOrder{
		order(workflow.StatusArte, workflow.PriorityNormal, 0),
		order(workflow.StatusProducao, workflow.PriorityNormal, 0),
		order(workflow.StatusAcabamento, workflow.PriorityNormal, 0),
		order(workflow.StatusRevisao, workflow.PriorityNormal, 0),
		order(workflow.StatusEntrega, workflow.PriorityNormal, 0),
	}

	s := stats.Compute(orders)

	// revisao e entrega ficam fora do "em produção" do painel
	assert.Equal(t, 3, s.InProgress)
	assert.Equal(t, 0, s.Pending)
	assert.Equal(t, 0, s.Completed)
}

func TestComputeByStatusSumsToTotal(t *testing.T) {
	orders := []models.ServiceOrder{}
	for _, s := range workflow.Sequence {
		orders = append(orders, order(s, workflow.PriorityNormal, 10))
	}
	orders = append(orders, order(workflow.StatusCancelado, workflow.PriorityNormal, 10))

	sum := 0
	result := stats.Compute(orders)
	for _, n := range result.ByStatus {
		sum += n
	}

	require.Equal(t, result.Total, sum)
	assert.Equal(t, len(orders), result.Total)
}

func TestComputeEmpty(t *testing.T) {
	s := stats.Compute(nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.TotalValue)
	assert.NotNil(t, s.ByStatus)
	assert.Empty(t, s.ByStatus)
}
