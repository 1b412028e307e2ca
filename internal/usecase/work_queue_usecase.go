package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/domain/scheduling"
	"goplan-erp/internal/usecase/interfaces"
)

var (
	ErrWorkQueueNotFound      = errors.New("work queue item not found")
	ErrInvalidWorkQueueID     = errors.New("invalid work queue id")
	ErrInvalidOrderNumber     = errors.New("invalid order number")
	ErrInvalidProductName     = errors.New("invalid product name")
	ErrInvalidTeamID          = errors.New("invalid team id")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidPriority        = errors.New("invalid priority")
	ErrInvalidWorkQueueStatus = errors.New("invalid work queue status")
)

// CreateWorkQueueCommand carries the caller-provided fields for a new queue
// entry. EstimatedDays, StartDate and ExpectedEnd are always derived here,
// never accepted from the caller.
type CreateWorkQueueCommand struct {
	OrderNumber string
	ProductName string
	Quantity    int
	Priority    int
	TeamID      string
	Notes       string
}

// UpdateWorkQueueCommand fully replaces the mutable fields of a queue entry.
type UpdateWorkQueueCommand struct {
	OrderNumber string
	ProductName string
	Quantity    int
	Priority    int
	TeamID      string
	Notes       string
	Status      entities.WorkQueueStatus
}

// IWorkQueueUseCase exposes work-queue scheduling operations.
//
// The due-date pipeline is: team headcount -> estimated working days ->
// projected completion date skipping Sundays and holidays. The pipeline reruns
// on every create, and on update whenever Quantity or TeamID change.

type IWorkQueueUseCase interface {
	Create(ctx context.Context, tenantID string, cmd CreateWorkQueueCommand) (entities.WorkQueueItem, error)
	Update(ctx context.Context, tenantID, id string, cmd UpdateWorkQueueCommand) (entities.WorkQueueItem, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.WorkQueueItem, error)
	List(ctx context.Context, tenantID string) ([]entities.WorkQueueItem, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type WorkQueueUseCase struct {
	repo       interfaces.IWorkQueueRepository
	masterData interfaces.IMasterDataRepository
	now        func() time.Time
}

var _ IWorkQueueUseCase = (*WorkQueueUseCase)(nil)

func NewWorkQueueUseCase(repo interfaces.IWorkQueueRepository, masterData interfaces.IMasterDataRepository) *WorkQueueUseCase {
	return &WorkQueueUseCase{repo: repo, masterData: masterData, now: time.Now}
}

func (u *WorkQueueUseCase) Create(ctx context.Context, tenantID string, cmd CreateWorkQueueCommand) (entities.WorkQueueItem, error) {
	cmd.OrderNumber = strings.TrimSpace(cmd.OrderNumber)
	cmd.ProductName = strings.TrimSpace(cmd.ProductName)
	cmd.TeamID = strings.TrimSpace(cmd.TeamID)

	if cmd.OrderNumber == "" {
		return entities.WorkQueueItem{}, ErrInvalidOrderNumber
	}
	if cmd.ProductName == "" {
		return entities.WorkQueueItem{}, ErrInvalidProductName
	}
	if cmd.TeamID == "" {
		return entities.WorkQueueItem{}, ErrInvalidTeamID
	}
	if cmd.Quantity <= 0 {
		return entities.WorkQueueItem{}, ErrInvalidQuantity
	}
	if cmd.Priority < 1 || cmd.Priority > 5 {
		return entities.WorkQueueItem{}, ErrInvalidPriority
	}

	estimatedDays, start, end, err := u.estimate(ctx, tenantID, cmd.Quantity, cmd.TeamID, u.today())
	if err != nil {
		return entities.WorkQueueItem{}, err
	}

	now := u.now().UTC()
	item := entities.WorkQueueItem{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		OrderNumber:   cmd.OrderNumber,
		ProductName:   cmd.ProductName,
		Quantity:      cmd.Quantity,
		Priority:      cmd.Priority,
		TeamID:        cmd.TeamID,
		EstimatedDays: estimatedDays,
		StartDate:     &start,
		ExpectedEnd:   &end,
		Status:        entities.WorkQueueStatusPending,
		Notes:         cmd.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	log.Printf("[workqueue][usecase] create order_number=%s quantity=%d team_id=%s estimated_days=%d expected_end=%s",
		item.OrderNumber, item.Quantity, item.TeamID, item.EstimatedDays, end.Format("2006-01-02"))
	return u.repo.Create(ctx, item)
}

func (u *WorkQueueUseCase) Update(ctx context.Context, tenantID, id string, cmd UpdateWorkQueueCommand) (entities.WorkQueueItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkQueueItem{}, ErrInvalidWorkQueueID
	}
	cmd.OrderNumber = strings.TrimSpace(cmd.OrderNumber)
	cmd.ProductName = strings.TrimSpace(cmd.ProductName)
	cmd.TeamID = strings.TrimSpace(cmd.TeamID)

	if cmd.OrderNumber == "" {
		return entities.WorkQueueItem{}, ErrInvalidOrderNumber
	}
	if cmd.ProductName == "" {
		return entities.WorkQueueItem{}, ErrInvalidProductName
	}
	if cmd.TeamID == "" {
		return entities.WorkQueueItem{}, ErrInvalidTeamID
	}
	if cmd.Quantity <= 0 {
		return entities.WorkQueueItem{}, ErrInvalidQuantity
	}
	if cmd.Priority < 1 || cmd.Priority > 5 {
		return entities.WorkQueueItem{}, ErrInvalidPriority
	}
	if !cmd.Status.Valid() {
		return entities.WorkQueueItem{}, ErrInvalidWorkQueueStatus
	}

	item, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	if item.ID == "" {
		return entities.WorkQueueItem{}, ErrWorkQueueNotFound
	}

	if cmd.Quantity != item.Quantity || cmd.TeamID != item.TeamID {
		start := u.today()
		if item.StartDate != nil {
			start = *item.StartDate
		}
		estimatedDays, _, end, err := u.estimate(ctx, tenantID, cmd.Quantity, cmd.TeamID, start)
		if err != nil {
			return entities.WorkQueueItem{}, err
		}
		item.EstimatedDays = estimatedDays
		item.ExpectedEnd = &end
		log.Printf("[workqueue][usecase] reestimated id=%s estimated_days=%d expected_end=%s",
			item.ID, estimatedDays, end.Format("2006-01-02"))
	}

	item.OrderNumber = cmd.OrderNumber
	item.ProductName = cmd.ProductName
	item.Quantity = cmd.Quantity
	item.Priority = cmd.Priority
	item.TeamID = cmd.TeamID
	item.Notes = cmd.Notes
	item.Status = cmd.Status
	item.UpdatedAt = u.now().UTC()

	return u.repo.Update(ctx, item)
}

func (u *WorkQueueUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.WorkQueueItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkQueueItem{}, ErrInvalidWorkQueueID
	}

	item, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.WorkQueueItem{}, err
	}
	if item.ID == "" {
		return entities.WorkQueueItem{}, ErrWorkQueueNotFound
	}
	return item, nil
}

func (u *WorkQueueUseCase) List(ctx context.Context, tenantID string) ([]entities.WorkQueueItem, error) {
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *WorkQueueUseCase) Delete(ctx context.Context, tenantID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkQueueID
	}

	item, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if item.ID == "" {
		return ErrWorkQueueNotFound
	}
	return u.repo.Delete(ctx, tenantID, id)
}

// estimate runs the two-stage due-date pipeline against current master data.
func (u *WorkQueueUseCase) estimate(ctx context.Context, tenantID string, quantity int, teamID string, start time.Time) (int, time.Time, time.Time, error) {
	employees, err := u.masterData.ListEmployees(ctx, tenantID)
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}
	holidays, err := u.masterData.ListHolidays(ctx, tenantID)
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}

	days := scheduling.EstimateDuration(quantity, teamID, employees)
	end := scheduling.ProjectCompletion(start, days, holidayDates(holidays))
	return days, start, end, nil
}

// today returns the current date at midnight UTC; the estimator ignores
// time-of-day and stored dates are calendar dates.
func (u *WorkQueueUseCase) today() time.Time {
	now := u.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func holidayDates(holidays []entities.Holiday) []string {
	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.DateString())
	}
	return dates
}
