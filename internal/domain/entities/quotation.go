package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a sales quotation.
//
// Status progression (draft -> sent -> approved|rejected) is driven by the
// sales team; this service only validates the value.

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusApproved, QuotationStatusRejected:
		return true
	}
	return false
}

// DiscountType selects how a line item discount is interpreted.

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeAmount  DiscountType = "amount"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercent || t == DiscountTypeAmount
}

// QuotationLineItem is a priced line on a quotation.
//
// Total is always re-derived from the other fields by the pricing engine; it
// is never independently authoritative.
type QuotationLineItem struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid"`
	QuotationID  string          `json:"quotation_id" gorm:"type:uuid;index"`
	ProductID    *string         `json:"product_id" gorm:"type:uuid"`
	ProductName  string          `json:"product_name"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity" gorm:"type:numeric"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"type:numeric"`
	DiscountType DiscountType    `json:"discount_type"`
	Discount     decimal.Decimal `json:"discount" gorm:"type:numeric"`
	Total        decimal.Decimal `json:"total" gorm:"type:numeric"`
	Position     int             `json:"position"`
}

// Quotation is a sales quotation persisted in PostgreSQL.
//
// Storage model:
//   - PK: id (uuid)
//   - unique index: (tenant_id, quotation_number) — backs the numbering retry
//   - Items ordered by Position for display
//
// The four aggregates (Subtotal, DiscountAmount, TaxAmount, GrandTotal) are
// recomputed together by the pricing engine on every write.
type Quotation struct {
	ID               string              `json:"id" gorm:"primaryKey;type:uuid"`
	TenantID         string              `json:"tenant_id" gorm:"type:uuid;uniqueIndex:idx_tenant_quotation_number"`
	QuotationNumber  string              `json:"quotation_number" gorm:"uniqueIndex:idx_tenant_quotation_number"`
	CustomerID       string              `json:"customer_id" gorm:"type:uuid"`
	ProjectName      string              `json:"project_name"`
	Date             time.Time           `json:"date" gorm:"type:date"`
	ValidUntil       time.Time           `json:"valid_until" gorm:"type:date"`
	PriceIncludesVat bool                `json:"price_includes_vat"`
	Subtotal         decimal.Decimal     `json:"subtotal" gorm:"type:numeric"`
	DiscountPercent  decimal.Decimal     `json:"discount_percent" gorm:"type:numeric"`
	DiscountAmount   decimal.Decimal     `json:"discount_amount" gorm:"type:numeric"`
	TaxPercent       decimal.Decimal     `json:"tax_percent" gorm:"type:numeric"`
	TaxAmount        decimal.Decimal     `json:"tax_amount" gorm:"type:numeric"`
	GrandTotal       decimal.Decimal     `json:"grand_total" gorm:"type:numeric"`
	Status           QuotationStatus     `json:"status"`
	Notes            string              `json:"notes"`
	Items            []QuotationLineItem `json:"items" gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
