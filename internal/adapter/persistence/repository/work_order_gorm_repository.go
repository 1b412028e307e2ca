package repository

import (
	"context"

	"gorm.io/gorm"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase/interfaces"
)

// WorkOrderGormRepository persists work orders and their work logs in
// PostgreSQL.

type WorkOrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderGormRepository)(nil)

func NewWorkOrderGormRepository(db *gorm.DB) *WorkOrderGormRepository {
	return &WorkOrderGormRepository{db: db}
}

func (r *WorkOrderGormRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if err := r.db.WithContext(ctx).Create(&wo).Error; err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderGormRepository) GetByID(ctx context.Context, tenantID, id string) (entities.WorkOrder, error) {
	var wo entities.WorkOrder
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&wo).Error
	if err := ignoreNotFound(err); err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderGormRepository) GetByNumber(ctx context.Context, tenantID, orderNumber string) (entities.WorkOrder, error) {
	var wo entities.WorkOrder
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND order_number = ?", tenantID, orderNumber).
		First(&wo).Error
	if err := ignoreNotFound(err); err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

// GetLatest returns the most recently created order; the assistant falls back
// to it when a message names no order.
func (r *WorkOrderGormRepository) GetLatest(ctx context.Context, tenantID string) (entities.WorkOrder, error) {
	var wo entities.WorkOrder
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		First(&wo).Error
	if err := ignoreNotFound(err); err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderGormRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.WorkOrder, error) {
	var wos []entities.WorkOrder
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&wos).Error
	if err != nil {
		return nil, err
	}
	return wos, nil
}

func (r *WorkOrderGormRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.WorkOrder{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("status", status)
	if res.Error != nil {
		return entities.WorkOrder{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.WorkOrder{}, nil
	}
	return r.GetByID(ctx, tenantID, id)
}

func (r *WorkOrderGormRepository) CreateWorkLog(ctx context.Context, entry entities.WorkLog) (entities.WorkLog, error) {
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return entities.WorkLog{}, err
	}
	return entry, nil
}
