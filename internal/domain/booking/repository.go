package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Transaction --------
	// WithinTx executa fn com um Repository preso a uma transação; o
	// assert de conflito e a escrita que o segue precisam compartilhar
	// os locks de linha até o commit.
	WithinTx(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.Barber, error)

	// -------- Schedule --------
	GetScheduleHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) ([]string, error)

	GetWorkingWeekdays(
		ctx context.Context,
		barberID uint,
	) (map[time.Weekday]bool, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
