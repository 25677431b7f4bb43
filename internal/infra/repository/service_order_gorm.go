package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/centurialsign/sgpg-api/internal/domain/order"
	"github.com/centurialsign/sgpg-api/internal/domain/workflow"
	"github.com/centurialsign/sgpg-api/internal/models"
)

type ServiceOrderGormRepository struct {
	db *gorm.DB
}

func NewServiceOrderGormRepository(db *gorm.DB) *ServiceOrderGormRepository {
	return &ServiceOrderGormRepository{db: db}
}

// --------------------------------------------------
// ServiceOrder
// --------------------------------------------------

func (r *ServiceOrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.ServiceOrder,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ServiceOrderGormRepository) GetOrderByID(
	ctx context.Context,
	id string,
) (*models.ServiceOrder, error) {

	var o models.ServiceOrder
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ?", id).
		First(&o).Error; err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *ServiceOrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.ServiceOrder,
) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *ServiceOrderGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from *workflow.Status,
	to workflow.Status,
	changedBy *string,
	notes string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Model(&models.ServiceOrder{}).
			Where("id = ?", id).
			Update("status", to).Error; err != nil {
			return err
		}

		h := models.OsStatusHistory{
			ServiceOrderID: id,
			FromStatus:     from,
			ToStatus:       to,
			ChangedBy:      changedBy,
			Notes:          notes,
		}

		return tx.Create(&h).Error
	})
}

func (r *ServiceOrderGormRepository) DeleteOrder(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ServiceOrder{}).Error
}

func (r *ServiceOrderGormRepository) ListOrders(
	ctx context.Context,
) ([]models.ServiceOrder, error) {

	var orders []models.ServiceOrder
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

// --------------------------------------------------
// Trilha de status
// --------------------------------------------------

func (r *ServiceOrderGormRepository) AppendStatusHistory(
	ctx context.Context,
	h *models.OsStatusHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *ServiceOrderGormRepository) ListStatusHistory(
	ctx context.Context,
	orderID string,
) ([]models.OsStatusHistory, error) {

	var items []models.OsStatusHistory
	if err := r.db.WithContext(ctx).
		Where("service_order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ServiceOrderGormRepository) ListRecentHistory(
	ctx context.Context,
	limit int,
) ([]models.OsStatusHistory, error) {

	var items []models.OsStatusHistory
	if err := r.db.WithContext(ctx).
		Preload("ServiceOrder").
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// Compile-time check
var _ domain.Repository = (*ServiceOrderGormRepository)(nil)
