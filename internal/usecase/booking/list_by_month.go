package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository

	shopTimezone string
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	shopTimezone string,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo:         repo,
		shopTimezone: shopTimezone,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	loc := timezone.Location(uc.shopTimezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
}
