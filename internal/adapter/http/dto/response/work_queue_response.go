package response

import (
	"time"

	"goplan-erp/internal/domain/entities"
)

// WorkQueueResponse presents a scheduled production job. Calendar dates are
// rendered as ISO-8601 date strings.
type WorkQueueResponse struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"order_number"`
	ProductName     string    `json:"product_name"`
	Quantity        int       `json:"quantity"`
	Priority        int       `json:"priority"`
	TeamID          string    `json:"team_id"`
	EstimatedDays   int       `json:"estimated_days"`
	StartDate       *string   `json:"start_date"`
	ExpectedEndDate *string   `json:"expected_end_date"`
	ActualEndDate   *string   `json:"actual_end_date"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromWorkQueueItem(item entities.WorkQueueItem) WorkQueueResponse {
	return WorkQueueResponse{
		ID:              item.ID,
		OrderNumber:     item.OrderNumber,
		ProductName:     item.ProductName,
		Quantity:        item.Quantity,
		Priority:        item.Priority,
		TeamID:          item.TeamID,
		EstimatedDays:   item.EstimatedDays,
		StartDate:       dateString(item.StartDate),
		ExpectedEndDate: dateString(item.ExpectedEnd),
		ActualEndDate:   dateString(item.ActualEnd),
		Status:          string(item.Status),
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func FromWorkQueueItems(items []entities.WorkQueueItem) []WorkQueueResponse {
	out := make([]WorkQueueResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromWorkQueueItem(item))
	}
	return out
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
