package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente da gráfica, sem login. Campos além do nome são opcionais.
type Client struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:150;not null" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	CpfCnpj string `gorm:"size:20" json:"cpf_cnpj"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:2" json:"state"`
	Notes   string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// MatchesSearch aplica a busca da tela de clientes: nome e e-mail
// sem diferenciar maiúsculas, CPF/CNPJ por substring literal.
func (c *Client) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Email), q) {
		return true
	}
	return c.CpfCnpj != "" && strings.Contains(c.CpfCnpj, query)
}
