package interfaces

import (
	"context"

	"goplan-erp/internal/domain/entities"
)

// IWorkQueueRepository abstracts PostgreSQL persistence for WorkQueueItem.
//
// Lookups return a zero-value item (empty ID) when nothing matches; callers
// translate that into their own not-found errors.

type IWorkQueueRepository interface {
	Create(ctx context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.WorkQueueItem, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.WorkQueueItem, error)
	Update(ctx context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error)
	Delete(ctx context.Context, tenantID, id string) error
}
