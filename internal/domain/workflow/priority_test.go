package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
)

func TestPriorityRank(t *testing.T) {
	assert.Less(t, workflow.PriorityBaixa.Rank(), workflow.PriorityNormal.Rank())
	assert.Less(t, workflow.PriorityNormal.Rank(), workflow.PriorityAlta.Rank())
	assert.Less(t, workflow.PriorityAlta.Rank(), workflow.PriorityUrgente.Rank())

	assert.Equal(t, -1, workflow.Priority("critica").Rank())
}

func TestPriorityConfig(t *testing.T) {
	for _, p := range []workflow.Priority{
		workflow.PriorityBaixa,
		workflow.PriorityNormal,
		workflow.PriorityAlta,
		workflow.PriorityUrgente,
	} {
		assert.True(t, p.Valid(), "prioridade %s", p)
		assert.NotEmpty(t, p.Config().Label, "prioridade %s", p)
		assert.NotEmpty(t, p.Config().Color, "prioridade %s", p)
	}

	assert.False(t, workflow.Priority("critica").Valid())
	assert.Equal(t, "critica", workflow.Priority("critica").Config().Label)
}

func TestProductTypeConfig(t *testing.T) {
	all := []workflow.ProductType{
		workflow.ProductPlacaSinalizacao,
		workflow.ProductAdesivo,
		workflow.ProductFachada,
		workflow.ProductBanner,
		workflow.ProductBrinde,
		workflow.ProductOutdoor,
		workflow.ProductImpressaoDigital,
		workflow.ProductOutros,
	}

	for _, pt := range all {
		assert.True(t, pt.Valid(), "tipo %s", pt)
		assert.NotEmpty(t, pt.Config().Label, "tipo %s", pt)
		assert.NotEmpty(t, pt.Config().Icon, "tipo %s", pt)
	}

	assert.False(t, workflow.ProductType("camiseta").Valid())
	assert.Equal(t, "camiseta", workflow.ProductType("camiseta").Config().Label)
}
