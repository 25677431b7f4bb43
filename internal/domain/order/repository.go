package order

import (
	"context"

	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/models"
)

type Repository interface {
	// -------- ServiceOrder --------
	CreateOrder(
		ctx context.Context,
		o *models.ServiceOrder,
	) error

	GetOrderByID(
		ctx context.Context,
		id string,
	) (*models.ServiceOrder, error)

	UpdateOrder(
		ctx context.Context,
		o *models.ServiceOrder,
	) error

	// UpdateStatus grava o novo status e a entrada da trilha na
	// mesma transação.
	UpdateStatus(
		ctx context.Context,
		id string,
		from *workflow.Status,
		to workflow.Status,
		changedBy *string,
		notes string,
	) error

	DeleteOrder(
		ctx context.Context,
		id string,
	) error

	ListOrders(
		ctx context.Context,
	) ([]models.ServiceOrder, error)

	// -------- Trilha de status --------
	AppendStatusHistory(
		ctx context.Context,
		h *models.OsStatusHistory,
	) error

	ListStatusHistory(
		ctx context.Context,
		orderID string,
	) ([]models.OsStatusHistory, error)

	ListRecentHistory(
		ctx context.Context,
		limit int,
	) ([]models.OsStatusHistory, error)
}
