package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound      = errors.New("work order not found")
	ErrInvalidWorkOrderID     = errors.New("invalid work order id")
	ErrInvalidWorkOrderStatus = errors.New("invalid work order status")
	ErrInvalidWorkLogHours    = errors.New("invalid work log hours")
)

type CreateWorkOrderCommand struct {
	OrderNumber  string
	CustomerID   string
	ProductName  string
	Quantity     int
	DeliveryDate *time.Time
	Notes        string
}

// IWorkOrderUseCase exposes the tracking operations the work-order board and
// the chat assistant rely on. Status transitions are externally driven.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, tenantID string, cmd CreateWorkOrderCommand) (entities.WorkOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.WorkOrder, error)
	List(ctx context.Context, tenantID string) ([]entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
	LogWork(ctx context.Context, tenantID, workOrderID string, hours decimal.Decimal, description string) (entities.WorkLog, error)
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, tenantID string, cmd CreateWorkOrderCommand) (entities.WorkOrder, error) {
	cmd.OrderNumber = strings.TrimSpace(cmd.OrderNumber)
	cmd.ProductName = strings.TrimSpace(cmd.ProductName)
	if cmd.OrderNumber == "" {
		return entities.WorkOrder{}, ErrInvalidOrderNumber
	}
	if cmd.ProductName == "" {
		return entities.WorkOrder{}, ErrInvalidProductName
	}
	if cmd.Quantity <= 0 {
		return entities.WorkOrder{}, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	wo := entities.WorkOrder{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		OrderNumber:  cmd.OrderNumber,
		CustomerID:   strings.TrimSpace(cmd.CustomerID),
		ProductName:  cmd.ProductName,
		Quantity:     cmd.Quantity,
		Status:       entities.WorkOrderStatusPending,
		DeliveryDate: cmd.DeliveryDate,
		Notes:        cmd.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, wo)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context, tenantID string) ([]entities.WorkOrder, error) {
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, tenantID, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if !status.Valid() {
		return entities.WorkOrder{}, ErrInvalidWorkOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, tenantID, id, status)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}

func (u *WorkOrderUseCase) LogWork(ctx context.Context, tenantID, workOrderID string, hours decimal.Decimal, description string) (entities.WorkLog, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkLog{}, ErrInvalidWorkOrderID
	}
	if !hours.IsPositive() {
		return entities.WorkLog{}, ErrInvalidWorkLogHours
	}

	wo, err := u.repo.GetByID(ctx, tenantID, workOrderID)
	if err != nil {
		return entities.WorkLog{}, err
	}
	if wo.ID == "" {
		return entities.WorkLog{}, ErrWorkOrderNotFound
	}

	entry := entities.WorkLog{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		WorkOrderID: wo.ID,
		HoursWorked: hours,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.CreateWorkLog(ctx, entry)
}
