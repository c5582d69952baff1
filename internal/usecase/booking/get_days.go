package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type GetBookableDays struct {
	repo domain.Repository
}

func NewGetBookableDays(repo domain.Repository) *GetBookableDays {
	return &GetBookableDays{repo: repo}
}

func (uc *GetBookableDays) Execute(
	ctx context.Context,
	barberID uint,
	today time.Time,
) ([]domain.DaySlot, error) {

	weekdays, err := uc.repo.GetWorkingWeekdays(ctx, barberID)
	if err != nil {
		return nil, err
	}

	return domain.NextBookableDays(today, weekdays), nil
}
