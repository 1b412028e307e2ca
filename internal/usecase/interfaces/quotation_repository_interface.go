package interfaces

import (
	"context"
	"errors"

	"goplan-erp/internal/domain/entities"
)

// ErrQuotationNumberTaken reports that the generated quotation number lost the
// race against a concurrent insert. The unique index on (tenant_id,
// quotation_number) is the actual arbiter; callers regenerate and retry.
var ErrQuotationNumberTaken = errors.New("quotation number already taken")

// IQuotationRepository abstracts PostgreSQL persistence for Quotation.
//
// Create and Update persist the quotation together with its line items in one
// transaction so the derived aggregates never drift from the lines.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quotation, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Quotation, error)
	ListNumbers(ctx context.Context, tenantID string) ([]string, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuotationStatus) (entities.Quotation, error)
	Delete(ctx context.Context, tenantID, id string) error
}
