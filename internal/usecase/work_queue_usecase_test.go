package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"goplan-erp/internal/domain/entities"
	mock_interfaces "goplan-erp/internal/usecase/interfaces/mocks"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestWorkQueueUseCase_Create(t *testing.T) {
	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name string
			cmd  CreateWorkQueueCommand
			want error
		}{
			{"empty order number", CreateWorkQueueCommand{OrderNumber: "  ", ProductName: "p", TeamID: "t", Quantity: 1, Priority: 1}, ErrInvalidOrderNumber},
			{"empty product name", CreateWorkQueueCommand{OrderNumber: "WO-1", ProductName: "", TeamID: "t", Quantity: 1, Priority: 1}, ErrInvalidProductName},
			{"empty team", CreateWorkQueueCommand{OrderNumber: "WO-1", ProductName: "p", TeamID: " ", Quantity: 1, Priority: 1}, ErrInvalidTeamID},
			{"zero quantity", CreateWorkQueueCommand{OrderNumber: "WO-1", ProductName: "p", TeamID: "t", Quantity: 0, Priority: 1}, ErrInvalidQuantity},
			{"negative quantity", CreateWorkQueueCommand{OrderNumber: "WO-1", ProductName: "p", TeamID: "t", Quantity: -5, Priority: 1}, ErrInvalidQuantity},
			{"priority too low", CreateWorkQueueCommand{OrderNumber: "WO-1", ProductName: "p", TeamID: "t", Quantity: 1, Priority: 0}, ErrInvalidPriority},
			{"priority too high", CreateWorkQueueCommand{OrderNumber: "WO-1", ProductName: "p", TeamID: "t", Quantity: 1, Priority: 6}, ErrInvalidPriority},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewWorkQueueUseCase(nil, nil)
				_, err := uc.Create(context.Background(), "tenant-1", tc.cmd)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("create runs the due-date pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkQueueRepository(ctrl)
		masterData := mock_interfaces.NewMockIMasterDataRepository(ctrl)
		uc := NewWorkQueueUseCase(repo, masterData)
		uc.now = fixedClock("2024-06-01T10:30:00Z") // a Saturday

		masterData.EXPECT().ListEmployees(gomock.Any(), "tenant-1").Return([]entities.Employee{
			{TeamID: "team-a", Count: 3},
			{TeamID: "team-a", Count: 2},
			{TeamID: "team-b", Count: 9},
		}, nil)
		masterData.EXPECT().ListHolidays(gomock.Any(), "tenant-1").Return([]entities.Holiday{
			{Date: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)},
		}, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkQueueItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error) {
				if item.ID == "" || item.TenantID != "tenant-1" || item.Status != entities.WorkQueueStatusPending {
					t.Fatalf("unexpected item: %+v", item)
				}
				// 5 workers * 10/day = 50/day; 120 units -> 3 working days.
				if item.EstimatedDays != 3 {
					t.Fatalf("expected 3 estimated days, got %d", item.EstimatedDays)
				}
				if item.StartDate == nil || item.StartDate.Format("2006-01-02") != "2024-06-01" {
					t.Fatalf("unexpected start date: %v", item.StartDate)
				}
				// Jun 2 is a Sunday and Jun 4 a holiday: Jun 3, 5, 6.
				if item.ExpectedEnd == nil || item.ExpectedEnd.Format("2006-01-02") != "2024-06-06" {
					t.Fatalf("unexpected expected end: %v", item.ExpectedEnd)
				}
				return item, nil
			},
		)

		got, err := uc.Create(context.Background(), "tenant-1", CreateWorkQueueCommand{
			OrderNumber: " WO-120 ",
			ProductName: "shirt",
			TeamID:      "team-a",
			Quantity:    120,
			Priority:    2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OrderNumber != "WO-120" {
			t.Fatalf("expected trimmed order number, got %q", got.OrderNumber)
		}
	})

	t.Run("master data error bubbles up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkQueueRepository(ctrl)
		masterData := mock_interfaces.NewMockIMasterDataRepository(ctrl)
		uc := NewWorkQueueUseCase(repo, masterData)

		masterData.EXPECT().ListEmployees(gomock.Any(), "tenant-1").Return(nil, errors.New("db"))

		_, err := uc.Create(context.Background(), "tenant-1", CreateWorkQueueCommand{
			OrderNumber: "WO-1", ProductName: "p", TeamID: "t", Quantity: 1, Priority: 1,
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkQueueUseCase_Update(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := entities.WorkQueueItem{
		ID:            "wq-1",
		TenantID:      "tenant-1",
		OrderNumber:   "WO-1",
		ProductName:   "shirt",
		Quantity:      120,
		Priority:      2,
		TeamID:        "team-a",
		EstimatedDays: 3,
		StartDate:     &start,
		Status:        entities.WorkQueueStatusPending,
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkQueueRepository(ctrl)
		uc := NewWorkQueueUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "missing").Return(entities.WorkQueueItem{}, nil)

		_, err := uc.Update(context.Background(), "tenant-1", "missing", UpdateWorkQueueCommand{
			OrderNumber: "WO-1", ProductName: "p", TeamID: "t", Quantity: 1, Priority: 1, Status: entities.WorkQueueStatusPending,
		})
		if !errors.Is(err, ErrWorkQueueNotFound) {
			t.Fatalf("expected ErrWorkQueueNotFound, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewWorkQueueUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "tenant-1", "wq-1", UpdateWorkQueueCommand{
			OrderNumber: "WO-1", ProductName: "p", TeamID: "t", Quantity: 1, Priority: 1, Status: "paused",
		})
		if !errors.Is(err, ErrInvalidWorkQueueStatus) {
			t.Fatalf("expected ErrInvalidWorkQueueStatus, got %v", err)
		}
	})

	t.Run("unchanged quantity and team skip reestimation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkQueueRepository(ctrl)
		masterData := mock_interfaces.NewMockIMasterDataRepository(ctrl)
		uc := NewWorkQueueUseCase(repo, masterData)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "wq-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkQueueItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error) {
				if item.EstimatedDays != 3 {
					t.Fatalf("estimated days should be untouched, got %d", item.EstimatedDays)
				}
				if item.Status != entities.WorkQueueStatusInProgress {
					t.Fatalf("expected status update, got %s", item.Status)
				}
				return item, nil
			},
		)

		// No master data expectations: reestimation must not run.
		_, err := uc.Update(context.Background(), "tenant-1", "wq-1", UpdateWorkQueueCommand{
			OrderNumber: "WO-1", ProductName: "shirt", TeamID: "team-a",
			Quantity: 120, Priority: 2, Status: entities.WorkQueueStatusInProgress,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quantity change recomputes from the original start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkQueueRepository(ctrl)
		masterData := mock_interfaces.NewMockIMasterDataRepository(ctrl)
		uc := NewWorkQueueUseCase(repo, masterData)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "wq-1").Return(existing, nil)
		masterData.EXPECT().ListEmployees(gomock.Any(), "tenant-1").Return([]entities.Employee{
			{TeamID: "team-a", Count: 5},
		}, nil)
		masterData.EXPECT().ListHolidays(gomock.Any(), "tenant-1").Return(nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkQueueItem{})).DoAndReturn(
			func(_ context.Context, item entities.WorkQueueItem) (entities.WorkQueueItem, error) {
				// 300 units at 50/day -> 6 working days from Sat Jun 1:
				// Jun 3,4,5,6,7,8 (Sundays Jun 2 skipped).
				if item.EstimatedDays != 6 {
					t.Fatalf("expected 6 estimated days, got %d", item.EstimatedDays)
				}
				if item.ExpectedEnd == nil || item.ExpectedEnd.Format("2006-01-02") != "2024-06-08" {
					t.Fatalf("unexpected expected end: %v", item.ExpectedEnd)
				}
				if item.StartDate == nil || !item.StartDate.Equal(start) {
					t.Fatalf("start date must be preserved, got %v", item.StartDate)
				}
				return item, nil
			},
		)

		_, err := uc.Update(context.Background(), "tenant-1", "wq-1", UpdateWorkQueueCommand{
			OrderNumber: "WO-1", ProductName: "shirt", TeamID: "team-a",
			Quantity: 300, Priority: 2, Status: entities.WorkQueueStatusPending,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkQueueUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkQueueRepository(ctrl)
		uc := NewWorkQueueUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "missing").Return(entities.WorkQueueItem{}, nil)

		if err := uc.Delete(context.Background(), "tenant-1", "missing"); !errors.Is(err, ErrWorkQueueNotFound) {
			t.Fatalf("expected ErrWorkQueueNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkQueueRepository(ctrl)
		uc := NewWorkQueueUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "tenant-1", "wq-1").Return(entities.WorkQueueItem{ID: "wq-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "tenant-1", "wq-1").Return(nil)

		if err := uc.Delete(context.Background(), "tenant-1", "wq-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
