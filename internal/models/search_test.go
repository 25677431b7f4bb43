package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/centurialsign/sgpg-api/internal/models"
)

func TestClientMatchesSearch(t *testing.T) {
	c := models.Client{
		Name:    "Padaria São João",
		Email:   "contato@padariasaojoao.com.br",
		CpfCnpj: "12.345.678/0001-90",
	}

	t.Run("vazio casa com tudo", func(t *testing.T) {
		assert.True(t, c.MatchesSearch(""))
	})

	t.Run("nome sem diferenciar maiúsculas", func(t *testing.T) {
		assert.True(t, c.MatchesSearch("padaria"))
		assert.True(t, c.MatchesSearch("SÃO JOÃO"))
	})

	t.Run("email", func(t *testing.T) {
		assert.True(t, c.MatchesSearch("padariasaojoao"))
	})

	t.Run("cpf_cnpj por substring literal", func(t *testing.T) {
		assert.True(t, c.MatchesSearch("345.678"))
		// a busca não remove a máscara
		assert.False(t, c.MatchesSearch("345678"))
	})

	t.Run("sem correspondência", func(t *testing.T) {
		assert.False(t, c.MatchesSearch("mercearia"))
	})
}

func TestServiceOrderMatchesSearch(t *testing.T) {
	o := models.ServiceOrder{
		OsNumber: 1042,
		Title:    "Fachada em ACM",
		Client:   &models.Client{Name: "Auto Peças Silva"},
	}

	t.Run("título", func(t *testing.T) {
		assert.True(t, o.MatchesSearch("fachada"))
		assert.True(t, o.MatchesSearch("ACM"))
	})

	t.Run("nome do cliente", func(t *testing.T) {
		assert.True(t, o.MatchesSearch("silva"))
	})

	t.Run("número da OS por substring", func(t *testing.T) {
		assert.True(t, o.MatchesSearch("1042"))
		assert.True(t, o.MatchesSearch("042"))
		assert.False(t, o.MatchesSearch("999"))
	})

	t.Run("sem cliente vinculado", func(t *testing.T) {
		semCliente := models.ServiceOrder{OsNumber: 7, Title: "Banner"}
		assert.False(t, semCliente.MatchesSearch("silva"))
		assert.True(t, semCliente.MatchesSearch("7"))
	})
}
