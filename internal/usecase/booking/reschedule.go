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

type RescheduleAppointmentInput struct {
	AppointmentID uint

	// Campos remarcáveis; zero/vazio mantém o valor atual
	BarberID  uint
	ServiceID uint
	Date      string
	Time      string
}

type RescheduleAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Publisher

	shopTimezone string
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	publisher *events.Publisher,
	shopTimezone string,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:         repo,
		audit:        auditDispatcher,
		events:       publisher,
		shopTimezone: shopTimezone,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	barberID := ap.BarberID
	if in.BarberID != 0 {
		barberID = in.BarberID
	}

	serviceID := ap.ServiceID
	if in.ServiceID != 0 {
		serviceID = in.ServiceID
	}

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location(uc.shopTimezone)

	start := ap.StartTime.In(loc)
	if in.Date != "" && in.Time != "" {
		start, err = time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// o horário novo passa pela mesma conta de disponibilidade da
	// criação (quadro, vão até a próxima reserva, teto do dia);
	// o próprio agendamento não conta como conflito
	availability := NewGetAvailability(uc.repo)
	result, err := availability.Execute(ctx, domain.AvailabilityInput{
		BarberID:             barberID,
		ServiceID:            serviceID,
		Date:                 start,
		ExcludeAppointmentID: ap.ID,
	})
	if err != nil {
		return nil, err
	}

	label := start.Format("15:04")
	available := false
	for _, h := range result.Hours {
		if h == label {
			available = true
			break
		}
	}
	if !available {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	ap.BarberID = barberID
	ap.ServiceID = serviceID
	if err := domain.Reschedule(ap, start, end); err != nil {
		return nil, err
	}

	// conflito + escrita na mesma transação, como na criação
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoTimeConflict(ctx, barberID, start, end, ap.ID); err != nil {
			return err
		}
		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Publish(ctx, "rescheduled", ap)

	return ap, nil
}
