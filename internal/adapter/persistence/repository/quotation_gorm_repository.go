package repository

import (
	"context"

	"gorm.io/gorm"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase/interfaces"
)

// QuotationGormRepository persists quotations and their line items in
// PostgreSQL. The (tenant_id, quotation_number) unique index arbitrates
// concurrent number assignment; a violation surfaces as
// interfaces.ErrQuotationNumberTaken so the use case can regenerate.

type QuotationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotationRepository = (*QuotationGormRepository)(nil)

func NewQuotationGormRepository(db *gorm.DB) *QuotationGormRepository {
	return &QuotationGormRepository{db: db}
}

func (r *QuotationGormRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if err := r.db.WithContext(ctx).Create(&q).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Quotation{}, interfaces.ErrQuotationNumberTaken
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationGormRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Quotation, error) {
	var q entities.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&q).Error
	if err := ignoreNotFound(err); err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationGormRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Quotation, error) {
	var qs []entities.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&qs).Error
	if err != nil {
		return nil, err
	}
	return qs, nil
}

func (r *QuotationGormRepository) ListNumbers(ctx context.Context, tenantID string) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&entities.Quotation{}).
		Where("tenant_id = ?", tenantID).
		Pluck("quotation_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// Update replaces the quotation row and its full line-item set in one
// transaction: the pricing engine always hands over a complete rebuild.
func (r *QuotationGormRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", q.ID).Delete(&entities.QuotationLineItem{}).Error; err != nil {
			return err
		}
		return tx.Save(&q).Error
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationGormRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Quotation{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("status", status)
	if res.Error != nil {
		return entities.Quotation{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Quotation{}, nil
	}
	return r.GetByID(ctx, tenantID, id)
}

func (r *QuotationGormRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&entities.QuotationLineItem{}).Error; err != nil {
			return err
		}
		return tx.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&entities.Quotation{}).Error
	})
}
