package interfaces

import (
	"context"

	"goplan-erp/internal/domain/entities"
)

// IMasterDataRepository reads the reference data the scheduling estimator
// consumes: teams, employee headcounts and the holiday calendar. This service
// does not own these records; they are maintained by the HR/settings modules.

type IMasterDataRepository interface {
	ListTeams(ctx context.Context, tenantID string) ([]entities.Team, error)
	ListEmployees(ctx context.Context, tenantID string) ([]entities.Employee, error)
	ListHolidays(ctx context.Context, tenantID string) ([]entities.Holiday, error)
}
