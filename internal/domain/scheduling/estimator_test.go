package scheduling

import (
	"testing"
	"time"

	"goplan-erp/internal/domain/entities"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEstimateDuration(t *testing.T) {
	t.Run("team capacity drives throughput", func(t *testing.T) {
		employees := []entities.Employee{
			{TeamID: "team-a", Count: 3},
			{TeamID: "team-a", Count: 2},
			{TeamID: "team-b", Count: 9},
		}

		// 5 workers * 10 units/day = 50/day; 120 units -> ceil(120/50) = 3.
		if got := EstimateDuration(120, "team-a", employees); got != 3 {
			t.Fatalf("expected 3 days, got %d", got)
		}
	})

	t.Run("no matching employees falls back to 10 per day", func(t *testing.T) {
		if got := EstimateDuration(25, "team-x", nil); got != 3 {
			t.Fatalf("expected 3 days, got %d", got)
		}
	})

	t.Run("zero-count rows fall back too", func(t *testing.T) {
		employees := []entities.Employee{{TeamID: "team-a", Count: 0}}
		if got := EstimateDuration(25, "team-a", employees); got != 3 {
			t.Fatalf("expected 3 days, got %d", got)
		}
	})

	t.Run("minimum one day", func(t *testing.T) {
		employees := []entities.Employee{{TeamID: "team-a", Count: 100}}
		if got := EstimateDuration(1, "team-a", employees); got != 1 {
			t.Fatalf("expected 1 day, got %d", got)
		}
	})

	t.Run("ceil division", func(t *testing.T) {
		cases := []struct {
			quantity int
			want     int
		}{
			{quantity: 10, want: 1},
			{quantity: 11, want: 2},
			{quantity: 100, want: 10},
			{quantity: 101, want: 11},
		}
		for _, tc := range cases {
			if got := EstimateDuration(tc.quantity, "team-x", nil); got != tc.want {
				t.Fatalf("quantity %d: expected %d days, got %d", tc.quantity, tc.want, got)
			}
		}
	})
}

func TestProjectCompletion(t *testing.T) {
	t.Run("skips sunday", func(t *testing.T) {
		// 2024-06-01 is a Saturday; the single working day lands on Monday
		// after Sunday June 2 is skipped.
		got := ProjectCompletion(date("2024-06-01"), 1, nil)
		if got.Format("2006-01-02") != "2024-06-03" {
			t.Fatalf("expected 2024-06-03, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("skips holidays", func(t *testing.T) {
		// 2024-06-07 is a Friday; Saturday is a holiday, Sunday is skipped.
		got := ProjectCompletion(date("2024-06-07"), 1, []string{"2024-06-08"})
		if got.Format("2006-01-02") != "2024-06-10" {
			t.Fatalf("expected 2024-06-10, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("zero working days returns start unchanged", func(t *testing.T) {
		start := date("2024-06-02") // a Sunday, deliberately
		if got := ProjectCompletion(start, 0, nil); !got.Equal(start) {
			t.Fatalf("expected start date back, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("consecutive holidays spanning a week", func(t *testing.T) {
		holidays := []string{"2024-04-13", "2024-04-15", "2024-04-16"} // Songkran; the 14th is a Sunday
		got := ProjectCompletion(date("2024-04-12"), 2, holidays)
		if got.Format("2006-01-02") != "2024-04-18" {
			t.Fatalf("expected 2024-04-18, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("result is never a sunday or a holiday", func(t *testing.T) {
		holidays := []string{"2024-06-04", "2024-06-10", "2024-06-17", "2024-07-01"}
		start := date("2024-06-01")
		for days := 1; days <= 30; days++ {
			got := ProjectCompletion(start, days, holidays)
			if got.Weekday() == time.Sunday {
				t.Fatalf("days=%d: landed on a Sunday (%s)", days, got.Format("2006-01-02"))
			}
			for _, h := range holidays {
				if got.Format("2006-01-02") == h {
					t.Fatalf("days=%d: landed on holiday %s", days, h)
				}
			}
		}
	})
}

func TestProjectCompletion_ZeroWorkingDays(t *testing.T) {
	start := date("2025-01-01")
	if got := ProjectCompletion(start, 0, []string{"2025-01-01"}); !got.Equal(start) {
		t.Fatalf("expected unchanged start date, got %s", got.Format("2006-01-02"))
	}
}
