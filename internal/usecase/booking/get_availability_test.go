package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func availabilityFake(t *testing.T, date time.Time) *fakeRepo {
	t.Helper()

	repo := newFakeRepo()
	repo.services[1] = &models.Service{ID: 1, Name: "Corte", DurationMin: 30}
	repo.schedule[int(date.Weekday())] = []string{"09:00", "09:30", "10:00", "10:30"}
	return repo
}

func TestGetAvailability_ComputesHours(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := availabilityFake(t, date)
	repo.bookings = []models.Appointment{
		{
			ServiceID: 1,
			StartTime: time.Date(2030, 6, 10, 9, 30, 0, 0, time.UTC),
		},
	}

	result, err := NewGetAvailability(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(result.Hours, want) {
		t.Fatalf("expected %v, got %v", want, result.Hours)
	}
	if result.Degraded {
		t.Fatalf("expected non-degraded result")
	}
}

func TestGetAvailability_NoServiceSelected(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := availabilityFake(t, date)

	result, err := NewGetAvailability(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// sem serviço a duração é zero: todo horário livre passa
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(result.Hours, want) {
		t.Fatalf("expected %v, got %v", want, result.Hours)
	}
}

func TestGetAvailability_NoSchedule(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	repo.services[1] = &models.Service{ID: 1, DurationMin: 30}

	result, err := NewGetAvailability(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Hours) != 0 {
		t.Fatalf("expected no hours, got %v", result.Hours)
	}
}

func TestGetAvailability_ServiceNotFound(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := availabilityFake(t, date)

	_, err := NewGetAvailability(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 99,
		Date:      date,
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestGetAvailability_UnknownBookedService(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := availabilityFake(t, date)
	repo.bookings = []models.Appointment{
		{
			ServiceID: 42, // não existe mais
			StartTime: time.Date(2030, 6, 10, 9, 30, 0, 0, time.UTC),
		},
	}

	_, err := NewGetAvailability(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})
	if !httperr.IsBusiness(err, "unknown_service") {
		t.Fatalf("expected unknown_service, got %v", err)
	}
}

func TestGetAvailability_ExcludesGivenAppointment(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := availabilityFake(t, date)
	repo.bookings = []models.Appointment{
		{
			ID:        7,
			ServiceID: 1,
			StartTime: time.Date(2030, 6, 10, 9, 30, 0, 0, time.UTC),
		},
	}

	result, err := NewGetAvailability(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarberID:             1,
		ServiceID:            1,
		Date:                 date,
		ExcludeAppointmentID: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a reserva excluída não bloqueia o próprio horário
	want := []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(result.Hours, want) {
		t.Fatalf("expected %v, got %v", want, result.Hours)
	}
}

func TestGetAvailability_DegradedWhenBookingsFail(t *testing.T) {
	date := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := availabilityFake(t, date)
	repo.bookingsErr = errors.New("connection refused")

	result, err := NewGetAvailability(repo).Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Degraded {
		t.Fatalf("expected degraded result")
	}

	// sem conflitos conhecidos, o cálculo segue só com o quadro
	want := []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(result.Hours, want) {
		t.Fatalf("expected %v, got %v", want, result.Hours)
	}
}
