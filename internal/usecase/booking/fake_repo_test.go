package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRepo implementa domain.Repository em memória para os testes de caso
// de uso, sem Postgres.
type fakeRepo struct {
	services     map[uint]*models.Service
	barbers      map[uint]*models.Barber
	schedule     map[int][]string
	appointments map[uint]*models.Appointment

	bookings    []models.Appointment
	bookingsErr error
	conflictErr error

	created []*models.Appointment
	updated []*models.Appointment
	deleted []*models.Appointment

	lastConflictExcludeID uint

	inTx         bool
	conflictInTx bool
	createInTx   bool
	updateInTx   bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uint]*models.Service{},
		barbers:      map[uint]*models.Barber{},
		schedule:     map[int][]string{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) WithinTx(_ context.Context, fn func(domain.Repository) error) error {
	f.inTx = true
	defer func() { f.inTx = false }()
	return fn(f)
}

func (f *fakeRepo) GetService(_ context.Context, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return svc, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, barberID uint) (*models.Barber, error) {
	b, ok := f.barbers[barberID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return b, nil
}

func (f *fakeRepo) GetScheduleHours(_ context.Context, _ uint, weekday int) ([]string, error) {
	return f.schedule[weekday], nil
}

func (f *fakeRepo) GetWorkingWeekdays(_ context.Context, _ uint) (map[time.Weekday]bool, error) {
	days := map[time.Weekday]bool{}
	for wd, hours := range f.schedule {
		if len(hours) > 0 {
			days[time.Weekday(wd)] = true
		}
	}
	return days, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ap)
	f.createInTx = f.inTx
	return nil
}

func (f *fakeRepo) AssertNoTimeConflict(
	_ context.Context,
	_ uint,
	_ time.Time,
	_ time.Time,
	excludeID uint,
) error {
	f.lastConflictExcludeID = excludeID
	f.conflictInTx = f.inTx
	return f.conflictErr
}

func (f *fakeRepo) GetAppointment(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = append(f.updated, ap)
	f.updateInTx = f.inTx
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	f.deleted = append(f.deleted, ap)
	return nil
}

func (f *fakeRepo) ListBookingsForDay(
	_ context.Context,
	_ uint,
	_ time.Time,
	_ time.Time,
) ([]models.Appointment, error) {
	if f.bookingsErr != nil {
		return nil, f.bookingsErr
	}
	return f.bookings, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(
	_ context.Context,
	_ uint,
	_ time.Time,
	_ time.Time,
) ([]models.Appointment, error) {
	return f.bookings, nil
}
