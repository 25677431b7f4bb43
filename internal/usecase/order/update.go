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

// Campos nil não são alterados.
type UpdateOrderInput struct {
	Title               *string
	Description         *string
	ClientID            *string
	ProductType         *workflow.ProductType
	Priority            *workflow.Priority
	Quantity            *int
	UnitPrice           *float64
	EstimatedDelivery   *time.Time
	ActualDelivery      *time.Time
	Notes               *string
	DesignerName        *string
	ProductionChecklist []string
	AssignedTo          *string
}

type UpdateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateOrder {
	return &UpdateOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateOrder) Execute(
	ctx context.Context,
	orderID string,
	in UpdateOrderInput,
	updatedBy *string,
) (*models.ServiceOrder, error) {

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, httperr.ErrBusiness("title_required")
		}
		o.Title = *in.Title
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.ClientID != nil {
		if *in.ClientID == "" {
			o.ClientID = nil
		} else {
			o.ClientID = in.ClientID
		}
		o.Client = nil
	}
	if in.ProductType != nil {
		if !in.ProductType.Valid() {
			return nil, httperr.ErrBusiness("invalid_product_type")
		}
		o.ProductType = *in.ProductType
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return nil, httperr.ErrBusiness("invalid_priority")
		}
		o.Priority = *in.Priority
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
		o.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if *in.UnitPrice < 0 {
			return nil, httperr.ErrBusiness("invalid_unit_price")
		}
		o.UnitPrice = *in.UnitPrice
	}
	if in.EstimatedDelivery != nil {
		o.EstimatedDelivery = in.EstimatedDelivery
	}
	if in.ActualDelivery != nil {
		o.ActualDelivery = in.ActualDelivery
	}
	if in.Notes != nil {
		o.Notes = *in.Notes
	}
	if in.DesignerName != nil {
		o.DesignerName = *in.DesignerName
	}
	if in.ProductionChecklist != nil {
		o.ProductionChecklist = in.ProductionChecklist
	}
	if in.AssignedTo != nil {
		o.AssignedTo = in.AssignedTo
	}

	// total_price sempre acompanha quantidade × preço unitário.
	if in.Quantity != nil || in.UnitPrice != nil {
		o.TotalPrice = float64(o.Quantity) * o.UnitPrice
	}

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   updatedBy,
		Action:   "os_updated",
		Entity:   "service_order",
		EntityID: &o.ID,
	})

	return o, nil
}
