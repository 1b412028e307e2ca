package response

import (
	"time"

	"goplan-erp/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerID   string    `json:"customer_id"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	DeliveryDate *string   `json:"delivery_date"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           wo.ID,
		OrderNumber:  wo.OrderNumber,
		CustomerID:   wo.CustomerID,
		ProductName:  wo.ProductName,
		Quantity:     wo.Quantity,
		Status:       string(wo.Status),
		DeliveryDate: dateString(wo.DeliveryDate),
		Notes:        wo.Notes,
		CreatedAt:    wo.CreatedAt,
		UpdatedAt:    wo.UpdatedAt,
	}
}

func FromWorkOrders(wos []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(wos))
	for _, wo := range wos {
		out = append(out, FromWorkOrder(wo))
	}
	return out
}

type WorkLogResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	HoursWorked float64   `json:"hours_worked"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromWorkLog(entry entities.WorkLog) WorkLogResponse {
	return WorkLogResponse{
		ID:          entry.ID,
		WorkOrderID: entry.WorkOrderID,
		HoursWorked: entry.HoursWorked.InexactFloat64(),
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}
