package order

import (
	"context"
	"time"

	"github.com/centurialsign/sgpg-api/internal/audit"
	domain "github.com/centurialsign/sgpg-api/internal/domain/order"
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/httperr"
	"github.com/centurialsign/sgpg-api/internal/models"
)

type CreateOrderInput struct {
	Title               string
	Description         string
	ClientID            *string
	ProductType         workflow.ProductType
	Priority            workflow.Priority
	Quantity            int
	UnitPrice           float64
	EstimatedDelivery   *time.Time
	Notes               string
	DesignerName        string
	ProductionChecklist []string
	CreatedBy           *string
	AssignedTo          *string
}

type CreateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.ServiceOrder, error) {

	if in.Title == "" {
		return nil, httperr.ErrBusiness("title_required")
	}

	if in.ProductType == "" {
		in.ProductType = workflow.ProductOutros
	}
	if !in.ProductType.Valid() {
		return nil, httperr.ErrBusiness("invalid_product_type")
	}

	if in.Priority == "" {
		in.Priority = workflow.PriorityNormal
	}
	if !in.Priority.Valid() {
		return nil, httperr.ErrBusiness("invalid_priority")
	}

	if in.Quantity < 1 {
		in.Quantity = 1
	}
	if in.UnitPrice < 0 {
		return nil, httperr.ErrBusiness("invalid_unit_price")
	}

	checklist := in.ProductionChecklist
	if checklist == nil {
		checklist = []string{}
	}

	o := models.ServiceOrder{
		Title:               in.Title,
		Description:         in.Description,
		ClientID:            in.ClientID,
		ProductType:         in.ProductType,
		Status:              workflow.StatusOrcamento,
		Priority:            in.Priority,
		Quantity:            in.Quantity,
		UnitPrice:           in.UnitPrice,
		TotalPrice:          float64(in.Quantity) * in.UnitPrice,
		EstimatedDelivery:   in.EstimatedDelivery,
		Notes:               in.Notes,
		DesignerName:        in.DesignerName,
		ProductionChecklist: checklist,
		CreatedBy:           in.CreatedBy,
		AssignedTo:          in.AssignedTo,
	}

	if err := uc.repo.CreateOrder(ctx, &o); err != nil {
		return nil, err
	}

	// Primeira entrada da trilha: sem status de origem.
	h := models.OsStatusHistory{
		ServiceOrderID: o.ID,
		FromStatus:     nil,
		ToStatus:       o.Status,
		ChangedBy:      in.CreatedBy,
	}
	if err := uc.repo.AppendStatusHistory(ctx, &h); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.CreatedBy,
		Action:   "os_created",
		Entity:   "service_order",
		EntityID: &o.ID,
		Metadata: map[string]any{"os_number": o.OsNumber},
	})

	return &o, nil
}
