package repository

import (
	"context"

	"gorm.io/gorm"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase/interfaces"
)

// MasterDataGormRepository reads the catalogs the scheduling estimator and the
// calendar UI depend on. All lists are tenant-scoped.

type MasterDataGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IMasterDataRepository = (*MasterDataGormRepository)(nil)

func NewMasterDataGormRepository(db *gorm.DB) *MasterDataGormRepository {
	return &MasterDataGormRepository{db: db}
}

func (r *MasterDataGormRepository) ListTeams(ctx context.Context, tenantID string) ([]entities.Team, error) {
	var teams []entities.Team
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *MasterDataGormRepository) ListEmployees(ctx context.Context, tenantID string) ([]entities.Employee, error) {
	var employees []entities.Employee
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *MasterDataGormRepository) ListHolidays(ctx context.Context, tenantID string) ([]entities.Holiday, error) {
	var holidays []entities.Holiday
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("date ASC").
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return holidays, nil
}
