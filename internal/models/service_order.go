package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
)

// Ordem de serviço (OS), o registro central da produção.
// os_number é sequencial e atribuído pelo banco, nunca pelo cliente.
type ServiceOrder struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	OsNumber int64  `gorm:"uniqueIndex;default:nextval('os_number_seq')" json:"os_number"`

	ClientID *string `gorm:"type:uuid" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"clients,omitempty"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	ProductType workflow.ProductType `gorm:"size:30;default:'outros'" json:"product_type"`
	Status      workflow.Status      `gorm:"size:20;default:'orcamento'" json:"status"`
	Priority    workflow.Priority    `gorm:"size:10;default:'normal'" json:"priority"`

	Quantity   int     `gorm:"default:1" json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`

	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery"`

	Notes        string `gorm:"type:text" json:"notes"`
	DesignerName string `gorm:"size:100" json:"designer_name"`
	ArtworkURL   string `gorm:"size:500" json:"artwork_url"`

	ProductionChecklist []string `gorm:"serializer:json" json:"production_checklist"`

	CreatedBy  *string `gorm:"type:uuid" json:"created_by"`
	AssignedTo *string `gorm:"type:uuid" json:"assigned_to"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *ServiceOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// MatchesSearch aplica a busca da listagem de OS: título e nome do
// cliente sem diferenciar maiúsculas, número da OS por substring.
func (o *ServiceOrder) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(o.Title), q) {
		return true
	}
	if o.Client != nil && strings.Contains(strings.ToLower(o.Client.Name), q) {
		return true
	}
	return strings.Contains(strconv.FormatInt(o.OsNumber, 10), query)
}
