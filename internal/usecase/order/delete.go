package order

import (
	"context"

	"github.com/centurialsign/sgpg-api/internal/audit"
	domain "github.com/centurialsign/sgpg-api/internal/domain/order"
	"github.com/centurialsign/sgpg-api/internal/httperr"
)

type DeleteOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteOrder {
	return &DeleteOrder{
		repo:  repo,
		audit: audit,
	}
}

// Exclusão definitiva, sem tombstone.
func (uc *DeleteOrder) Execute(
	ctx context.Context,
	orderID string,
	deletedBy *string,
) error {

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return httperr.ErrBusiness("order_not_found")
	}

	if err := uc.repo.DeleteOrder(ctx, o.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   deletedBy,
		Action:   "os_deleted",
		Entity:   "service_order",
		EntityID: &o.ID,
		Metadata: map[string]any{"os_number": o.OsNumber},
	})

	return nil
}
