// Package scheduling holds the production due-date estimator: pure functions
// over already-fetched rosters and holiday calendars, with no I/O of their own.
package scheduling

import (
	"time"

	"goplan-erp/internal/domain/entities"
)

// defaultUnitsPerDay is the assumed daily throughput per employee, and the
// fallback team throughput when a team has no headcount rows.
//
// TODO: replace with per-product capacity data once the capacity module lands.
const defaultUnitsPerDay = 10

// EstimateDuration returns the estimated number of working days needed to
// produce quantity units with the given team.
//
// Throughput is the team's total headcount times defaultUnitsPerDay; a team
// with no matching employees falls back to defaultUnitsPerDay so the division
// never hits zero. The result is at least one day.
//
// Callers must reject non-positive quantities before calling; the estimator
// does not validate them.
func EstimateDuration(quantity int, teamID string, employees []entities.Employee) int {
	headcount := 0
	for _, e := range employees {
		if e.TeamID == teamID {
			headcount += e.Count
		}
	}

	throughput := defaultUnitsPerDay
	if headcount > 0 {
		throughput = headcount * defaultUnitsPerDay
	}

	days := (quantity + throughput - 1) / throughput
	if days < 1 {
		days = 1
	}
	return days
}

// ProjectCompletion walks forward from start one calendar day at a time and
// returns the date of the last consumed working day. A day is consumed unless
// it is a Sunday or its ISO-8601 date appears in holidayDates.
//
// With workingDays == 0 the start date is returned unchanged, even if it falls
// on a non-working day.
//
// Termination holds by construction (holiday matches are finite and at most
// one day in seven is a Sunday); the iteration cap only guards regressions.
func ProjectCompletion(start time.Time, workingDays int, holidayDates []string) time.Time {
	holidays := make(map[string]struct{}, len(holidayDates))
	for _, d := range holidayDates {
		holidays[d] = struct{}{}
	}

	day := start
	remaining := workingDays
	limit := workingDays*7 + len(holidayDates) + 7
	for i := 0; remaining > 0 && i < limit; i++ {
		day = day.AddDate(0, 0, 1)

		if day.Weekday() == time.Sunday {
			continue
		}
		if _, ok := holidays[day.Format("2006-01-02")]; ok {
			continue
		}

		remaining--
	}
	return day
}
