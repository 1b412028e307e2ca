package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/domain/pricing"
	"goplan-erp/internal/usecase/interfaces"
)

var (
	ErrQuotationNotFound        = errors.New("quotation not found")
	ErrInvalidQuotationID       = errors.New("invalid quotation id")
	ErrInvalidCustomerID        = errors.New("invalid customer id")
	ErrNoQuotationItems         = errors.New("quotation needs at least one line item")
	ErrInvalidItemQuantity      = errors.New("invalid line item quantity")
	ErrInvalidItemUnitPrice     = errors.New("invalid line item unit price")
	ErrInvalidItemDiscount      = errors.New("invalid line item discount")
	ErrInvalidDiscountType      = errors.New("invalid discount type")
	ErrInvalidDiscountPercent   = errors.New("invalid order discount percent")
	ErrInvalidTaxPercent        = errors.New("invalid tax percent")
	ErrInvalidQuotationStatus   = errors.New("invalid quotation status")
	ErrQuotationNumberExhausted = errors.New("could not assign a unique quotation number")
)

// maxNumberAttempts bounds the regenerate-and-retry loop when concurrent
// creations race on the same monthly sequence.
const maxNumberAttempts = 3

// QuotationItemCommand carries one caller-provided line. Total is always
// derived by the pricing engine.
type QuotationItemCommand struct {
	ProductID    *string
	ProductName  string
	Description  string
	Quantity     decimal.Decimal
	Unit         string
	UnitPrice    decimal.Decimal
	DiscountType entities.DiscountType
	Discount     decimal.Decimal
}

// QuotationCommand carries the caller-provided fields for a quotation create
// or full update. The four aggregates are never accepted from the caller.
type QuotationCommand struct {
	CustomerID       string
	ProjectName      string
	Date             time.Time
	ValidUntil       time.Time
	PriceIncludesVat bool
	DiscountPercent  decimal.Decimal
	TaxPercent       decimal.Decimal
	Notes            string
	Items            []QuotationItemCommand
}

// IQuotationUseCase exposes sales quotation operations.
//
// Every write path recomputes each line total and all four aggregates together
// through the pricing engine; partial recomputation is an invariant violation.

type IQuotationUseCase interface {
	Create(ctx context.Context, tenantID string, cmd QuotationCommand) (entities.Quotation, error)
	Update(ctx context.Context, tenantID, id string, cmd QuotationCommand) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuotationStatus) (entities.Quotation, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quotation, error)
	List(ctx context.Context, tenantID string) ([]entities.Quotation, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type QuotationUseCase struct {
	repo interfaces.IQuotationRepository
	now  func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, now: time.Now}
}

func (u *QuotationUseCase) Create(ctx context.Context, tenantID string, cmd QuotationCommand) (entities.Quotation, error) {
	if err := validateQuotationCommand(cmd); err != nil {
		return entities.Quotation{}, err
	}

	now := u.now().UTC()
	q := entities.Quotation{
		ID:               uuid.NewString(),
		TenantID:         tenantID,
		CustomerID:       strings.TrimSpace(cmd.CustomerID),
		ProjectName:      cmd.ProjectName,
		Date:             cmd.Date,
		ValidUntil:       cmd.ValidUntil,
		PriceIncludesVat: cmd.PriceIncludesVat,
		DiscountPercent:  cmd.DiscountPercent,
		TaxPercent:       cmd.TaxPercent,
		Status:           entities.QuotationStatusDraft,
		Notes:            cmd.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	u.price(&q, cmd.Items)

	// The generated number is advisory; the unique index arbitrates races.
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		numbers, err := u.repo.ListNumbers(ctx, tenantID)
		if err != nil {
			return entities.Quotation{}, err
		}
		q.QuotationNumber = pricing.NextNumber(numbers, u.now())

		created, err := u.repo.Create(ctx, q)
		if errors.Is(err, interfaces.ErrQuotationNumberTaken) {
			log.Printf("[quotation][usecase] number conflict attempt=%d number=%s", attempt, q.QuotationNumber)
			continue
		}
		if err != nil {
			return entities.Quotation{}, err
		}
		log.Printf("[quotation][usecase] created id=%s number=%s grand_total=%s", created.ID, created.QuotationNumber, created.GrandTotal)
		return created, nil
	}
	return entities.Quotation{}, ErrQuotationNumberExhausted
}

func (u *QuotationUseCase) Update(ctx context.Context, tenantID, id string, cmd QuotationCommand) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if err := validateQuotationCommand(cmd); err != nil {
		return entities.Quotation{}, err
	}

	q, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	q.CustomerID = strings.TrimSpace(cmd.CustomerID)
	q.ProjectName = cmd.ProjectName
	q.Date = cmd.Date
	q.ValidUntil = cmd.ValidUntil
	q.PriceIncludesVat = cmd.PriceIncludesVat
	q.DiscountPercent = cmd.DiscountPercent
	q.TaxPercent = cmd.TaxPercent
	q.Notes = cmd.Notes
	q.UpdatedAt = u.now().UTC()
	u.price(&q, cmd.Items)

	return u.repo.Update(ctx, q)
}

func (u *QuotationUseCase) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if !status.Valid() {
		return entities.Quotation{}, ErrInvalidQuotationStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, tenantID, id, status)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) List(ctx context.Context, tenantID string) ([]entities.Quotation, error) {
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *QuotationUseCase) Delete(ctx context.Context, tenantID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuotationNotFound
	}
	return u.repo.Delete(ctx, tenantID, id)
}

// price rebuilds the line items and all four aggregates from the command.
func (u *QuotationUseCase) price(q *entities.Quotation, items []QuotationItemCommand) {
	lines := make([]entities.QuotationLineItem, 0, len(items))
	for i, it := range items {
		line := entities.QuotationLineItem{
			ID:           uuid.NewString(),
			QuotationID:  q.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Description:  it.Description,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			UnitPrice:    it.UnitPrice,
			DiscountType: it.DiscountType,
			Discount:     it.Discount,
			Position:     i,
		}
		line.Total = pricing.LineTotal(line, q.TaxPercent, q.PriceIncludesVat)
		lines = append(lines, line)
	}

	totals := pricing.ComputeTotals(lines, q.DiscountPercent, q.TaxPercent, q.PriceIncludesVat)
	q.Items = lines
	q.Subtotal = totals.Subtotal
	q.DiscountAmount = totals.DiscountAmount
	q.TaxAmount = totals.TaxAmount
	q.GrandTotal = totals.GrandTotal
}

func validateQuotationCommand(cmd QuotationCommand) error {
	if strings.TrimSpace(cmd.CustomerID) == "" {
		return ErrInvalidCustomerID
	}
	if len(cmd.Items) == 0 {
		return ErrNoQuotationItems
	}
	if cmd.DiscountPercent.IsNegative() || cmd.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidDiscountPercent
	}
	if cmd.TaxPercent.IsNegative() {
		return ErrInvalidTaxPercent
	}
	for _, it := range cmd.Items {
		if !it.Quantity.IsPositive() {
			return ErrInvalidItemQuantity
		}
		if it.UnitPrice.IsNegative() {
			return ErrInvalidItemUnitPrice
		}
		if !it.DiscountType.Valid() {
			return ErrInvalidDiscountType
		}
		if it.Discount.IsNegative() {
			return ErrInvalidItemDiscount
		}
		if it.DiscountType == entities.DiscountTypePercent && it.Discount.GreaterThan(decimal.NewFromInt(100)) {
			return ErrInvalidItemDiscount
		}
	}
	return nil
}
