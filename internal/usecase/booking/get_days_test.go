package booking

import (
	"context"
	"testing"
	"time"
)

func TestGetBookableDays(t *testing.T) {
	repo := newFakeRepo()
	repo.schedule[int(time.Monday)] = []string{"09:00", "09:30"}
	repo.schedule[int(time.Wednesday)] = []string{"14:00"}

	// 2030-06-10 caiu numa segunda
	today := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)

	days, err := NewGetBookableDays(repo).Execute(context.Background(), 1, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d: %v", len(days), days)
	}
	if days[0].Label != "Hoje" {
		t.Fatalf("expected Hoje first, got %q", days[0].Label)
	}
	if days[1].Date.Weekday() != time.Wednesday {
		t.Fatalf("expected Wednesday second, got %v", days[1].Date.Weekday())
	}
}

func TestGetBookableDays_NoSchedule(t *testing.T) {
	repo := newFakeRepo()

	days, err := NewGetBookableDays(repo).Execute(
		context.Background(),
		1,
		time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected no days, got %v", days)
	}
}
