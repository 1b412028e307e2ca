package interfaces

import (
	"context"

	"goplan-erp/internal/domain/entities"
)

// IWorkOrderRepository abstracts PostgreSQL persistence for WorkOrder and its
// work logs. GetLatest feeds the chat assistant when a user request names no
// specific order.

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.WorkOrder, error)
	GetByNumber(ctx context.Context, tenantID, orderNumber string) (entities.WorkOrder, error)
	GetLatest(ctx context.Context, tenantID string) (entities.WorkOrder, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
	CreateWorkLog(ctx context.Context, entry entities.WorkLog) (entities.WorkLog, error)
}
