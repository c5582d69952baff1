package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID  uint
	ServiceID uint

	ClientName  string
	ClientPhone string

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Publisher

	shopTimezone      string
	minAdvanceMinutes int
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	publisher *events.Publisher,
	shopTimezone string,
	minAdvanceMinutes int,
) *CreateAppointment {
	return &CreateAppointment{
		repo:              repo,
		audit:             auditDispatcher,
		events:            publisher,
		shopTimezone:      shopTimezone,
		minAdvanceMinutes: minAdvanceMinutes,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data / hora no timezone da barbearia
	// --------------------------------------------------
	loc := timezone.Location(uc.shopTimezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Antecedência mínima
	// --------------------------------------------------
	minAdvance := uc.minAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(uc.shopTimezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 3. Serviço
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 4. Barbeiro ativo
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 5. O horário pedido precisa estar disponível:
	// mesma conta exibida ao cliente
	// --------------------------------------------------
	availability := NewGetAvailability(uc.repo)
	result, err := availability.Execute(ctx, domain.AvailabilityInput{
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      start,
	})
	if err != nil {
		return nil, err
	}

	requested := start.Format("15:04")
	available := false
	for _, h := range result.Hours {
		if h == requested {
			available = true
			break
		}
	}
	if !available {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 6. Conflito + criação na mesma transação: o lock das
	// linhas conflitantes precisa viver até o insert
	// --------------------------------------------------
	ap := &models.Appointment{
		BarberID:    in.BarberID,
		ServiceID:   svc.ID,
		StartTime:   start,
		EndTime:     end,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoTimeConflict(ctx, in.BarberID, start, end, 0); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Auditoria + feed de mudanças
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Publish(ctx, "created", ap)

	return ap, nil
}
