package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase/interfaces"
	mock_interfaces "goplan-erp/internal/usecase/interfaces/mocks"
)

func validQuotationCommand() QuotationCommand {
	return QuotationCommand{
		CustomerID:      "cust-1",
		ProjectName:     "uniform batch",
		DiscountPercent: decimal.Zero,
		TaxPercent:      decimal.NewFromInt(7),
		Items: []QuotationItemCommand{
			{
				ProductName:  "polo shirt",
				Quantity:     decimal.NewFromInt(3),
				Unit:         "pcs",
				UnitPrice:    decimal.RequireFromString("149.50"),
				DiscountType: entities.DiscountTypePercent,
				Discount:     decimal.Zero,
			},
		},
	}
}

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*QuotationCommand)
			want   error
		}{
			{"empty customer", func(c *QuotationCommand) { c.CustomerID = "  " }, ErrInvalidCustomerID},
			{"no items", func(c *QuotationCommand) { c.Items = nil }, ErrNoQuotationItems},
			{"discount percent over 100", func(c *QuotationCommand) { c.DiscountPercent = decimal.NewFromInt(101) }, ErrInvalidDiscountPercent},
			{"negative discount percent", func(c *QuotationCommand) { c.DiscountPercent = decimal.NewFromInt(-1) }, ErrInvalidDiscountPercent},
			{"negative tax", func(c *QuotationCommand) { c.TaxPercent = decimal.NewFromInt(-7) }, ErrInvalidTaxPercent},
			{"zero item quantity", func(c *QuotationCommand) { c.Items[0].Quantity = decimal.Zero }, ErrInvalidItemQuantity},
			{"negative unit price", func(c *QuotationCommand) { c.Items[0].UnitPrice = decimal.NewFromInt(-1) }, ErrInvalidItemUnitPrice},
			{"bad discount type", func(c *QuotationCommand) { c.Items[0].DiscountType = "bogus" }, ErrInvalidDiscountType},
			{"percent item discount over 100", func(c *QuotationCommand) { c.Items[0].Discount = decimal.NewFromInt(150) }, ErrInvalidItemDiscount},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cmd := validQuotationCommand()
				tc.mutate(&cmd)
				uc := NewQuotationUseCase(nil)
				_, err := uc.Create(context.Background(), "tenant-1", cmd)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("create assigns number and prices every line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)
		uc.now = fixedClock("2024-06-15T09:00:00Z")

		repo.EXPECT().ListNumbers(gomock.Any(), "tenant-1").Return([]string{"QT202406001", "QT202406003"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.QuotationNumber != "QT202406004" {
					t.Fatalf("expected QT202406004, got %s", q.QuotationNumber)
				}
				if q.Status != entities.QuotationStatusDraft {
					t.Fatalf("expected draft status, got %s", q.Status)
				}
				if len(q.Items) != 1 || q.Items[0].Position != 0 || q.Items[0].ID == "" {
					t.Fatalf("unexpected items: %+v", q.Items)
				}
				if !q.Items[0].Total.Equal(decimal.RequireFromString("448.50")) {
					t.Fatalf("unexpected line total: %s", q.Items[0].Total)
				}
				if !q.Subtotal.Equal(decimal.RequireFromString("448.50")) {
					t.Fatalf("unexpected subtotal: %s", q.Subtotal)
				}
				if !q.TaxAmount.Equal(decimal.RequireFromString("31.395")) {
					t.Fatalf("unexpected tax amount: %s", q.TaxAmount)
				}
				if !q.GrandTotal.Equal(decimal.RequireFromString("479.895")) {
					t.Fatalf("unexpected grand total: %s", q.GrandTotal)
				}
				return q, nil
			},
		)

		got, err := uc.Create(context.Background(), "tenant-1", validQuotationCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.TenantID != "tenant-1" {
			t.Fatalf("unexpected quotation: %+v", got)
		}
	})

	t.Run("retries on number conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)
		uc.now = fixedClock("2024-06-15T09:00:00Z")

		first := repo.EXPECT().ListNumbers(gomock.Any(), "tenant-1").Return([]string{"QT202406001"}, nil)
		firstCreate := repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, interfaces.ErrQuotationNumberTaken).After(first)
		second := repo.EXPECT().ListNumbers(gomock.Any(), "tenant-1").Return([]string{"QT202406001", "QT202406002"}, nil).After(firstCreate)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.QuotationNumber != "QT202406003" {
					t.Fatalf("expected regenerated QT202406003, got %s", q.QuotationNumber)
				}
				return q, nil
			},
		).After(second)

		if _, err := uc.Create(context.Background(), "tenant-1", validQuotationCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().ListNumbers(gomock.Any(), "tenant-1").Return(nil, nil).Times(maxNumberAttempts)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, interfaces.ErrQuotationNumberTaken).Times(maxNumberAttempts)

		_, err := uc.Create(context.Background(), "tenant-1", validQuotationCommand())
		if !errors.Is(err, ErrQuotationNumberExhausted) {
			t.Fatalf("expected ErrQuotationNumberExhausted, got %v", err)
		}
	})
}

func TestQuotationUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "missing").Return(entities.Quotation{}, nil)

		_, err := uc.Update(context.Background(), "tenant-1", "missing", validQuotationCommand())
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("update keeps the number and reprices everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "q-1").Return(entities.Quotation{
			ID:              "q-1",
			TenantID:        "tenant-1",
			QuotationNumber: "QT202406007",
			Status:          entities.QuotationStatusSent,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.QuotationNumber != "QT202406007" {
					t.Fatalf("quotation number must survive updates, got %s", q.QuotationNumber)
				}
				if q.Status != entities.QuotationStatusSent {
					t.Fatalf("status must survive full updates, got %s", q.Status)
				}
				// 10% order discount on 1000: 1000 - 100 = 900, +7% tax = 963.
				if !q.Subtotal.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("unexpected subtotal: %s", q.Subtotal)
				}
				if !q.DiscountAmount.Equal(decimal.NewFromInt(100)) {
					t.Fatalf("unexpected discount amount: %s", q.DiscountAmount)
				}
				if !q.TaxAmount.Equal(decimal.NewFromInt(63)) {
					t.Fatalf("unexpected tax amount: %s", q.TaxAmount)
				}
				if !q.GrandTotal.Equal(decimal.NewFromInt(963)) {
					t.Fatalf("unexpected grand total: %s", q.GrandTotal)
				}
				return q, nil
			},
		)

		cmd := validQuotationCommand()
		cmd.DiscountPercent = decimal.NewFromInt(10)
		cmd.Items = []QuotationItemCommand{{
			ProductName:  "jacket",
			Quantity:     decimal.NewFromInt(4),
			Unit:         "pcs",
			UnitPrice:    decimal.NewFromInt(250),
			DiscountType: entities.DiscountTypePercent,
			Discount:     decimal.Zero,
		}}

		if _, err := uc.Update(context.Background(), "tenant-1", "q-1", cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "tenant-1", "q-1", "archived")
		if !errors.Is(err, ErrInvalidQuotationStatus) {
			t.Fatalf("expected ErrInvalidQuotationStatus, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "tenant-1", "q-1", entities.QuotationStatusApproved).
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusApproved}, nil)

		got, err := uc.UpdateStatus(context.Background(), "tenant-1", "q-1", entities.QuotationStatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.QuotationStatusApproved {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "tenant-1", "missing", entities.QuotationStatusSent).
			Return(entities.Quotation{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "tenant-1", "missing", entities.QuotationStatusSent)
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	uc := NewQuotationUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "q-1").Return(entities.Quotation{ID: "q-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "tenant-1", "q-1").Return(nil)

	if err := uc.Delete(context.Background(), "tenant-1", "q-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
