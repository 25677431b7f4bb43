package order

import (
	"context"

	"github.com/centurialsign/sgpg-api/internal/audit"
	domain "github.com/centurialsign/sgpg-api/internal/domain/order"
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/httperr"
	"github.com/centurialsign/sgpg-api/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	guard workflow.TransitionGuard
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	guard workflow.TransitionGuard,
	audit *audit.Dispatcher,
) *ChangeStatus {
	if guard == nil {
		guard = workflow.AllowAll
	}
	return &ChangeStatus{
		repo:  repo,
		guard: guard,
		audit: audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	orderID string,
	to workflow.Status,
	changedBy *string,
	notes string,
) (*models.ServiceOrder, error) {

	if !to.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if !uc.guard(o.Status, to) {
		return nil, httperr.ErrBusiness("transition_not_allowed")
	}

	from := o.Status
	if err := uc.repo.UpdateStatus(ctx, o.ID, &from, to, changedBy, notes); err != nil {
		return nil, err
	}

	o.Status = to

	uc.audit.Dispatch(audit.Event{
		UserID:   changedBy,
		Action:   "os_status_changed",
		Entity:   "service_order",
		EntityID: &o.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   to,
		},
	})

	return o, nil
}
