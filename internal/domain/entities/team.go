package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Team is a production team that work-queue items are assigned to.
type Team struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	TenantID     string    `json:"tenant_id" gorm:"type:uuid;index"`
	DepartmentID string    `json:"department_id" gorm:"type:uuid"`
	Name         string    `json:"name"`
	Leader       string    `json:"leader"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Employee is a headcount record, not a person: Count holds how many workers
// the row represents. Team capacity is the sum of Count over a team's rows.
type Employee struct {
	ID                   string          `json:"id" gorm:"primaryKey;type:uuid"`
	TenantID             string          `json:"tenant_id" gorm:"type:uuid;index"`
	TeamID               string          `json:"team_id" gorm:"type:uuid;index"`
	Count                int             `json:"count"`
	AverageWage          decimal.Decimal `json:"average_wage" gorm:"type:numeric"`
	OverheadPercentage   decimal.Decimal `json:"overhead_percentage" gorm:"type:numeric"`
	ManagementPercentage decimal.Decimal `json:"management_percentage" gorm:"type:numeric"`
	Description          string          `json:"description"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// Holiday marks a calendar date as non-working.
//
// IsRecurring is carried for the calendar UI but not expanded here: the
// scheduling estimator matches the literal date only.
type Holiday struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	TenantID    string    `json:"tenant_id" gorm:"type:uuid;index"`
	Date        time.Time `json:"date" gorm:"type:date"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateString returns the holiday date as an ISO-8601 calendar date, the form
// the scheduling estimator matches against.
func (h Holiday) DateString() string {
	return h.Date.Format("2006-01-02")
}
