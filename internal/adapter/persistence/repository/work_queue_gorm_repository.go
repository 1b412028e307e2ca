package repository

import (
	"context"

	"gorm.io/gorm"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase/interfaces"
)

// WorkQueueGormRepository persists work-queue items in PostgreSQL.

type WorkQueueGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkQueueRepository = (*WorkQueueGormRepository)(nil)

func NewWorkQueueGormRepository(db *gorm.DB) *WorkQueueGormRepository {
	return &WorkQueueGormRepository{db: db}
}

func (r *WorkQueueGormRepository) Create(ctx context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return entities.WorkQueueItem{}, err
	}
	return item, nil
}

func (r *WorkQueueGormRepository) GetByID(ctx context.Context, tenantID, id string) (entities.WorkQueueItem, error) {
	var item entities.WorkQueueItem
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&item).Error
	if err := ignoreNotFound(err); err != nil {
		return entities.WorkQueueItem{}, err
	}
	return item, nil
}

// ListByTenant returns the queue in working order: highest priority first,
// oldest first within the same priority.
func (r *WorkQueueGormRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.WorkQueueItem, error) {
	var items []entities.WorkQueueItem
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("priority ASC, created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WorkQueueGormRepository) Update(ctx context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error) {
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return entities.WorkQueueItem{}, err
	}
	return item, nil
}

func (r *WorkQueueGormRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&entities.WorkQueueItem{}).Error
}
