package booking

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}
	return d
}

func TestNextBookableDays_FiltersWorkingWeekdays(t *testing.T) {
	// 2025-09-07 caiu num domingo
	today := mustDate(t, "2025-09-07")
	working := map[time.Weekday]bool{
		time.Monday:    true,
		time.Wednesday: true,
		time.Friday:    true,
	}

	days := NextBookableDays(today, working)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d: %v", len(days), days)
	}

	if days[0].Label != "Amanhã" || days[0].Date.Day() != 8 {
		t.Fatalf("expected Amanhã on the 8th, got %q on %v", days[0].Label, days[0].Date)
	}
	if days[1].Label != "quarta-feira, 10 de setembro" {
		t.Fatalf("unexpected label %q", days[1].Label)
	}
	if days[2].Label != "sexta-feira, 12 de setembro" {
		t.Fatalf("unexpected label %q", days[2].Label)
	}
}

func TestNextBookableDays_TodayLabel(t *testing.T) {
	// 2025-09-08 caiu numa segunda
	today := mustDate(t, "2025-09-08")
	working := map[time.Weekday]bool{time.Monday: true}

	days := NextBookableDays(today, working)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Label != "Hoje" {
		t.Fatalf("expected Hoje, got %q", days[0].Label)
	}
}

func TestNextBookableDays_EmptyWithoutWorkingDays(t *testing.T) {
	days := NextBookableDays(mustDate(t, "2025-09-07"), nil)
	if len(days) != 0 {
		t.Fatalf("expected no days, got %v", days)
	}
}

func TestNextBookableDays_FullWeekInCalendarOrder(t *testing.T) {
	today := mustDate(t, "2025-09-07")
	working := map[time.Weekday]bool{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		working[wd] = true
	}

	days := NextBookableDays(today, working)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if !days[i].Date.After(days[i-1].Date) {
			t.Fatalf("days out of order at %d: %v", i, days)
		}
	}
}
