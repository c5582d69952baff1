package booking

import (
	"context"
	"log"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type AvailabilityResult struct {
	Hours []string

	// Degraded indica que a busca de agendamentos falhou e o cálculo rodou
	// sem conflitos conhecidos; o chamador deve exibir um aviso, não um erro.
	Degraded bool
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*AvailabilityResult, error) {

	// --------------------------------------------------
	// Duração solicitada (sem serviço escolhido = 0)
	// --------------------------------------------------
	durationMin := 0
	if in.ServiceID != 0 {
		svc, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		durationMin = svc.DurationMin
	}

	// --------------------------------------------------
	// Quadro do barbeiro no dia da semana
	// --------------------------------------------------
	weekday := int(in.Date.Weekday())

	schedule, err := uc.repo.GetScheduleHours(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, err
	}
	if len(schedule) == 0 {
		return &AvailabilityResult{Hours: []string{}}, nil
	}

	// --------------------------------------------------
	// Agendamentos do dia; falha vira lista vazia + aviso
	// --------------------------------------------------
	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	degraded := false
	appointments, err := uc.repo.ListBookingsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		log.Println("availability: bookings fetch failed, computing without conflicts:", err)
		appointments = nil
		degraded = true
	}

	// --------------------------------------------------
	// Duração de cada agendamento vem do serviço dele;
	// serviço desconhecido é erro, nunca duração zero
	// --------------------------------------------------
	booked := make([]domain.BookedSlot, 0, len(appointments))
	for _, ap := range appointments {
		if in.ExcludeAppointmentID != 0 && ap.ID == in.ExcludeAppointmentID {
			continue
		}
		svc, err := uc.repo.GetService(ctx, ap.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("unknown_service")
		}
		booked = append(booked, domain.BookedSlot{
			StartLabel:  ap.StartTime.In(loc).Format("15:04"),
			DurationMin: svc.DurationMin,
		})
	}

	hours, err := domain.AvailableHours(schedule, booked, durationMin)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{Hours: hours, Degraded: degraded}, nil
}
