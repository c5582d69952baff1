package booking

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func stateFake(t *testing.T) *fakeRepo {
	t.Helper()

	repo := createFake(t, "2030-06-10")
	repo.appointments[7] = &models.Appointment{
		ID:        7,
		BarberID:  1,
		ServiceID: 1,
		StartTime: time.Date(2030, 6, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2030, 6, 10, 9, 30, 0, 0, time.UTC),
		Status:    "scheduled",
	}
	return repo
}

func TestCancelAppointment(t *testing.T) {
	repo := stateFake(t)
	uc := NewCancelAppointment(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != "cancelled" || ap.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %+v", ap)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected 1 update, got %d", len(repo.updated))
	}
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := stateFake(t)
	uc := NewCancelAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), 1, 99)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelAppointment_AlreadyCancelled(t *testing.T) {
	repo := stateFake(t)
	repo.appointments[7].Status = "cancelled"
	uc := NewCancelAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), 1, 7)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("no update expected, got %d", len(repo.updated))
	}
}

func TestCompleteAppointment(t *testing.T) {
	repo := stateFake(t)
	uc := NewCompleteAppointment(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != "completed" || ap.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", ap)
	}
}

func TestRescheduleAppointment(t *testing.T) {
	repo := stateFake(t)
	uc := NewRescheduleAppointment(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 7,
		Date:          "2030-06-10",
		Time:          "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC)
	if !ap.StartTime.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, ap.StartTime)
	}
	if !ap.EndTime.Equal(wantStart.Add(30 * time.Minute)) {
		t.Fatalf("expected end 30min after start, got %v", ap.EndTime)
	}
	if repo.lastConflictExcludeID != 7 {
		t.Fatalf("conflict check must exclude the appointment itself, got %d", repo.lastConflictExcludeID)
	}
	if !repo.conflictInTx || !repo.updateInTx {
		t.Fatalf("conflict check and update must share a transaction")
	}
}

func TestRescheduleAppointment_RespectsDayCeiling(t *testing.T) {
	repo := stateFake(t)
	repo.services[2] = &models.Service{ID: 2, Name: "Corte e barba", DurationMin: 60}
	uc := NewRescheduleAppointment(repo, nil, nil, "UTC")

	// 60min a partir de 10:00 passam do último horário do quadro (10:30)
	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 7,
		ServiceID:     2,
		Date:          "2030-06-10",
		Time:          "10:00",
	})
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("no update expected, got %d", len(repo.updated))
	}
}

func TestRescheduleAppointment_LastSlotRejected(t *testing.T) {
	repo := stateFake(t)
	uc := NewRescheduleAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 7,
		Date:          "2030-06-10",
		Time:          "10:30",
	})
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
}

func TestRescheduleAppointment_IgnoresOwnBooking(t *testing.T) {
	repo := stateFake(t)
	repo.bookings = []models.Appointment{*repo.appointments[7]}
	uc := NewRescheduleAppointment(repo, nil, nil, "UTC")

	// troca sem mudar o horário: a própria reserva não pode bloquear
	ap, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ap.StartTime.Equal(time.Date(2030, 6, 10, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("start time must be unchanged, got %v", ap.StartTime)
	}
}

func TestRescheduleAppointment_OutsideSchedule(t *testing.T) {
	repo := stateFake(t)
	uc := NewRescheduleAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 7,
		Date:          "2030-06-10",
		Time:          "22:00",
	})
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
}

func TestRescheduleAppointment_Cancelled(t *testing.T) {
	repo := stateFake(t)
	repo.appointments[7].Status = "cancelled"
	uc := NewRescheduleAppointment(repo, nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 7,
		Date:          "2030-06-10",
		Time:          "10:00",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestGetAppointment(t *testing.T) {
	repo := stateFake(t)
	uc := NewGetAppointment(repo)

	ap, err := uc.Execute(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.ID != 7 {
		t.Fatalf("expected appointment 7, got %d", ap.ID)
	}
}

func TestGetAppointment_NotFound(t *testing.T) {
	repo := stateFake(t)
	uc := NewGetAppointment(repo)

	_, err := uc.Execute(context.Background(), 99)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo := stateFake(t)
	uc := NewDeleteAppointment(repo, nil, nil)

	if err := uc.Execute(context.Background(), 1, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected 1 delete, got %d", len(repo.deleted))
	}
}
