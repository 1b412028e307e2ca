package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderStatus values mirror the production floor vocabulary used by the
// work-order board and the chat assistant.

type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// WorkOrder is a customer production order (e.g. "JB123") tracked across the
// shop floor. The chat assistant resolves user requests against these records.
type WorkOrder struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid"`
	TenantID     string          `json:"tenant_id" gorm:"type:uuid;index"`
	OrderNumber  string          `json:"order_number" gorm:"index"`
	CustomerID   string          `json:"customer_id" gorm:"type:uuid"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	Status       WorkOrderStatus `json:"status"`
	DeliveryDate *time.Time      `json:"delivery_date" gorm:"type:date"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WorkLog records hours spent against a work order.
type WorkLog struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid"`
	TenantID    string          `json:"tenant_id" gorm:"type:uuid;index"`
	WorkOrderID string          `json:"work_order_id" gorm:"type:uuid;index"`
	HoursWorked decimal.Decimal `json:"hours_worked" gorm:"type:numeric"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
