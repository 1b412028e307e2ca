package request

import (
	"github.com/shopspring/decimal"

	"goplan-erp/internal/usecase"
)

// WorkOrderRequest is the payload for work-order creation.
type WorkOrderRequest struct {
	OrderNumber  string `json:"order_number" binding:"required"`
	CustomerID   string `json:"customer_id"`
	ProductName  string `json:"product_name" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	DeliveryDate string `json:"delivery_date"`
	Notes        string `json:"notes"`
}

func (r WorkOrderRequest) ToCommand() (usecase.CreateWorkOrderCommand, error) {
	cmd := usecase.CreateWorkOrderCommand{
		OrderNumber: r.OrderNumber,
		CustomerID:  r.CustomerID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Notes:       r.Notes,
	}
	if r.DeliveryDate != "" {
		d, err := parseDate(r.DeliveryDate)
		if err != nil {
			return usecase.CreateWorkOrderCommand{}, err
		}
		cmd.DeliveryDate = &d
	}
	return cmd, nil
}

// WorkOrderStatusRequest carries a bare status transition.
type WorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// WorkLogRequest records hours worked against a work order.
type WorkLogRequest struct {
	HoursWorked float64 `json:"hours_worked" binding:"required"`
	Description string  `json:"description"`
}

func (r WorkLogRequest) Hours() decimal.Decimal {
	return decimal.NewFromFloat(r.HoursWorked)
}
