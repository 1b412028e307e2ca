// Package pricing holds the quotation totals engine: deterministic decimal
// arithmetic over line items, with persistence left entirely to callers.
package pricing

import (
	"github.com/shopspring/decimal"

	"goplan-erp/internal/domain/entities"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Totals carries the four quotation aggregates. They are always computed
// together; persisting a subset is an invariant violation.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}

// LineTotal computes a single line's net total.
//
// When priceIncludesVat is set, the unit price is deflated to its VAT-exclusive
// base before the discount applies. Percent discounts apply to the base price;
// amount discounts are taken verbatim.
//
// The engine does not clamp: a discount exceeding the base price yields a
// negative total. Callers wanting clamped behavior add it as policy.
func LineTotal(item entities.QuotationLineItem, taxPercent decimal.Decimal, priceIncludesVat bool) decimal.Decimal {
	base := item.UnitPrice
	if priceIncludesVat {
		base = item.UnitPrice.Div(one.Add(taxPercent.Div(hundred)))
	}

	discount := item.Discount
	if item.DiscountType == entities.DiscountTypePercent {
		discount = base.Mul(item.Discount).Div(hundred)
	}

	return item.Quantity.Mul(base.Sub(discount))
}

// ComputeTotals derives all four quotation aggregates from the line items, the
// order-level discount percentage and the tax rate. Items are summed in list
// order; the order is irrelevant to the sum but preserved for display.
func ComputeTotals(items []entities.QuotationLineItem, discountPercent, taxPercent decimal.Decimal, priceIncludesVat bool) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item, taxPercent, priceIncludesVat))
	}

	discountAmount := subtotal.Mul(discountPercent).Div(hundred)
	taxableBase := subtotal.Sub(discountAmount)
	taxAmount := taxableBase.Mul(taxPercent).Div(hundred)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		GrandTotal:     taxableBase.Add(taxAmount),
	}
}
