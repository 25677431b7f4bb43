package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
)

// Trilha de mudanças de status de uma OS. Append-only: registros
// nunca são alterados ou removidos individualmente.
type OsStatusHistory struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceOrderID string        `gorm:"type:uuid;index;not null" json:"service_order_id"`
	ServiceOrder   *ServiceOrder `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FromStatus *workflow.Status `gorm:"size:20" json:"from_status"`
	ToStatus   workflow.Status  `gorm:"size:20;not null" json:"to_status"`

	ChangedBy *string `gorm:"type:uuid" json:"changed_by"`
	Notes     string  `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (OsStatusHistory) TableName() string {
	return "os_status_history"
}

func (h *OsStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
