package entities

import "time"

// WorkQueueStatus represents the lifecycle of a production work-queue item.
//
// Domain notes:
//   - Transitions are externally driven by the production floor; there is no
//     automatic state machine in this service.

type WorkQueueStatus string

const (
	WorkQueueStatusPending    WorkQueueStatus = "pending"
	WorkQueueStatusInProgress WorkQueueStatus = "in_progress"
	WorkQueueStatusCompleted  WorkQueueStatus = "completed"
	WorkQueueStatusCancelled  WorkQueueStatus = "cancelled"
)

func (s WorkQueueStatus) Valid() bool {
	switch s {
	case WorkQueueStatusPending, WorkQueueStatusInProgress, WorkQueueStatusCompleted, WorkQueueStatusCancelled:
		return true
	}
	return false
}

// WorkQueueItem is a scheduled production job persisted in PostgreSQL.
//
// Storage model:
//   - PK: id (uuid)
//   - index: tenant_id
//
// Computed fields:
//   - EstimatedDays and ExpectedEndDate are derived by the scheduling
//     estimator and recomputed whenever Quantity or TeamID change. They are
//     never trusted from request payloads.
type WorkQueueItem struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid"`
	TenantID      string          `json:"tenant_id" gorm:"type:uuid;index"`
	OrderNumber   string          `json:"order_number"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	Priority      int             `json:"priority"`
	TeamID        string          `json:"team_id" gorm:"type:uuid"`
	EstimatedDays int             `json:"estimated_days"`
	StartDate     *time.Time      `json:"start_date" gorm:"type:date"`
	ExpectedEnd   *time.Time      `json:"expected_end_date" gorm:"column:expected_end_date;type:date"`
	ActualEnd     *time.Time      `json:"actual_end_date" gorm:"column:actual_end_date;type:date"`
	Status        WorkQueueStatus `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
