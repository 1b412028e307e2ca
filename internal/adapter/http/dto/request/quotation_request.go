package request

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// QuotationItemRequest is one caller-provided quotation line. The line total
// is computed server-side and deliberately absent here.
type QuotationItemRequest struct {
	ProductID    *string `json:"product_id"`
	ProductName  string  `json:"product_name" binding:"required"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity" binding:"required"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	DiscountType string  `json:"discount_type"`
	Discount     float64 `json:"discount"`
}

// QuotationRequest is the payload for quotation create and full-update
// endpoints. Dates are ISO-8601 calendar dates. The quotation number and all
// money aggregates are assigned server-side.
type QuotationRequest struct {
	CustomerID       string                 `json:"customer_id" binding:"required"`
	ProjectName      string                 `json:"project_name"`
	Date             string                 `json:"date"`
	ValidUntil       string                 `json:"valid_until"`
	PriceIncludesVat bool                   `json:"price_includes_vat"`
	DiscountPercent  float64                `json:"discount_percent"`
	TaxPercent       float64                `json:"tax_percent"`
	Notes            string                 `json:"notes"`
	Items            []QuotationItemRequest `json:"items" binding:"required"`
}

func (r QuotationRequest) ToCommand() (usecase.QuotationCommand, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.QuotationCommand{}, err
	}
	validUntil, err := parseDate(r.ValidUntil)
	if err != nil {
		return usecase.QuotationCommand{}, err
	}

	items := make([]usecase.QuotationItemCommand, 0, len(r.Items))
	for _, it := range r.Items {
		discountType := entities.DiscountType(it.DiscountType)
		if it.DiscountType == "" {
			discountType = entities.DiscountTypePercent
		}
		items = append(items, usecase.QuotationItemCommand{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Description:  it.Description,
			Quantity:     decimal.NewFromFloat(it.Quantity),
			Unit:         it.Unit,
			UnitPrice:    decimal.NewFromFloat(it.UnitPrice),
			DiscountType: discountType,
			Discount:     decimal.NewFromFloat(it.Discount),
		})
	}

	return usecase.QuotationCommand{
		CustomerID:       r.CustomerID,
		ProjectName:      r.ProjectName,
		Date:             date,
		ValidUntil:       validUntil,
		PriceIncludesVat: r.PriceIncludesVat,
		DiscountPercent:  decimal.NewFromFloat(r.DiscountPercent),
		TaxPercent:       decimal.NewFromFloat(r.TaxPercent),
		Notes:            r.Notes,
		Items:            items,
	}, nil
}

// QuotationStatusRequest carries a bare status transition.
type QuotationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
