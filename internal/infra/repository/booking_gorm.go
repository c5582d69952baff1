package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db    *gorm.DB
	cache *cache.Store
}

func NewBookingGormRepository(db *gorm.DB, store *cache.Store) *BookingGormRepository {
	return &BookingGormRepository{db: db, cache: store}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx, cache: r.cache})
	})
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	if svc, ok := r.cache.GetService(ctx, serviceID); ok {
		return svc, nil
	}

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		return nil, err
	}

	r.cache.SetService(ctx, &svc)
	return &svc, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, barberID).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetScheduleHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) ([]string, error) {

	if hours, ok := r.cache.GetScheduleHours(ctx, barberID, weekday); ok {
		return hours, nil
	}

	var sched models.BarberSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&sched).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return []string{}, nil
		}
		return nil, err
	}

	var hours []string
	if err := json.Unmarshal(sched.Hours, &hours); err != nil {
		return nil, httperr.ErrBusiness("invalid_schedule")
	}

	r.cache.SetScheduleHours(ctx, barberID, weekday, hours)
	return hours, nil
}

func (r *BookingGormRepository) GetWorkingWeekdays(
	ctx context.Context,
	barberID uint,
) (map[time.Weekday]bool, error) {

	var scheds []models.BarberSchedule
	if err := r.db.WithContext(ctx).
		Select("weekday", "hours").
		Where("barber_id = ?", barberID).
		Find(&scheds).Error; err != nil {
		return nil, err
	}

	weekdays := make(map[time.Weekday]bool, len(scheds))
	for _, s := range scheds {
		var hours []string
		if err := json.Unmarshal(s.Hours, &hours); err != nil {
			return nil, httperr.ErrBusiness("invalid_schedule")
		}
		// dia sem horários não entra no seletor
		if len(hours) > 0 {
			weekdays[time.Weekday(s.Weekday)] = true
		}
	}

	return weekdays, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// o repositório atribui o id público na criação
	if ap.PublicID == "" {
		ap.PublicID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	// Postgres não aceita FOR UPDATE junto de agregados; selecionamos os
	// ids em conflito para travar as linhas e contamos no cliente.
	var ids []uint
	q := conflictingAppointments(r.db.WithContext(ctx), barberID, start, end, excludeID)
	if err := q.Pluck("id", &ids).Error; err != nil {
		return err
	}

	if len(ids) > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func conflictingAppointments(
	db *gorm.DB,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) *gorm.DB {

	q := db.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			barberID,
			end,
			start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	return q
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "service_id", "start_time", "end_time").
		Where(
			"barber_id = ? AND status = 'scheduled' AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
