package request

import (
	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase"
)

// WorkQueueRequest is the payload for work-queue create and update endpoints.
// Estimated days and the expected end date are computed server-side and are
// deliberately absent here.
type WorkQueueRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Priority    int    `json:"priority" binding:"required"`
	TeamID      string `json:"team_id" binding:"required"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
}

func (r WorkQueueRequest) ToCreateCommand() usecase.CreateWorkQueueCommand {
	return usecase.CreateWorkQueueCommand{
		OrderNumber: r.OrderNumber,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Priority:    r.Priority,
		TeamID:      r.TeamID,
		Notes:       r.Notes,
	}
}

// ToUpdateCommand defaults a missing status to pending so create payloads can
// be replayed against the update endpoint.
func (r WorkQueueRequest) ToUpdateCommand() usecase.UpdateWorkQueueCommand {
	status := entities.WorkQueueStatus(r.Status)
	if r.Status == "" {
		status = entities.WorkQueueStatusPending
	}
	return usecase.UpdateWorkQueueCommand{
		OrderNumber: r.OrderNumber,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Priority:    r.Priority,
		TeamID:      r.TeamID,
		Notes:       r.Notes,
		Status:      status,
	}
}
