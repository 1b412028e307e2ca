package response

import (
	"time"

	"goplan-erp/internal/domain/entities"
)

type QuotationItemResponse struct {
	ID           string  `json:"id"`
	ProductID    *string `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	DiscountType string  `json:"discount_type"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
	Position     int     `json:"position"`
}

// QuotationResponse presents a quotation with its server-computed number and
// money aggregates.
type QuotationResponse struct {
	ID               string                  `json:"id"`
	QuotationNumber  string                  `json:"quotation_number"`
	CustomerID       string                  `json:"customer_id"`
	ProjectName      string                  `json:"project_name"`
	Date             string                  `json:"date"`
	ValidUntil       string                  `json:"valid_until"`
	PriceIncludesVat bool                    `json:"price_includes_vat"`
	Subtotal         float64                 `json:"subtotal"`
	DiscountPercent  float64                 `json:"discount_percent"`
	DiscountAmount   float64                 `json:"discount_amount"`
	TaxPercent       float64                 `json:"tax_percent"`
	TaxAmount        float64                 `json:"tax_amount"`
	GrandTotal       float64                 `json:"grand_total"`
	Status           string                  `json:"status"`
	Notes            string                  `json:"notes"`
	Items            []QuotationItemResponse `json:"items"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]QuotationItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuotationItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Description:  it.Description,
			Quantity:     it.Quantity.InexactFloat64(),
			Unit:         it.Unit,
			UnitPrice:    it.UnitPrice.InexactFloat64(),
			DiscountType: string(it.DiscountType),
			Discount:     it.Discount.InexactFloat64(),
			Total:        it.Total.InexactFloat64(),
			Position:     it.Position,
		})
	}

	return QuotationResponse{
		ID:               q.ID,
		QuotationNumber:  q.QuotationNumber,
		CustomerID:       q.CustomerID,
		ProjectName:      q.ProjectName,
		Date:             calendarDate(q.Date),
		ValidUntil:       calendarDate(q.ValidUntil),
		PriceIncludesVat: q.PriceIncludesVat,
		Subtotal:         q.Subtotal.InexactFloat64(),
		DiscountPercent:  q.DiscountPercent.InexactFloat64(),
		DiscountAmount:   q.DiscountAmount.InexactFloat64(),
		TaxPercent:       q.TaxPercent.InexactFloat64(),
		TaxAmount:        q.TaxAmount.InexactFloat64(),
		GrandTotal:       q.GrandTotal.InexactFloat64(),
		Status:           string(q.Status),
		Notes:            q.Notes,
		Items:            items,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}

func calendarDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
