package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const defaultTTL = 10 * time.Minute

// Store é um cache read-through para os dados de referência consultados a
// cada cálculo de disponibilidade: duração de serviços e quadro de horários
// dos barbeiros. As escritas administrativas invalidam as chaves afetadas.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: defaultTTL}
}

func serviceKey(id uint) string {
	return fmt.Sprintf("service:%d", id)
}

func scheduleKey(barberID uint, weekday int) string {
	return fmt.Sprintf("schedule:%d:%d", barberID, weekday)
}

// -------- Service --------

func (s *Store) GetService(ctx context.Context, id uint) (*models.Service, bool) {
	raw, err := s.rdb.Get(ctx, serviceKey(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var svc models.Service
	if err := json.Unmarshal(raw, &svc); err != nil {
		return nil, false
	}
	return &svc, true
}

func (s *Store) SetService(ctx context.Context, svc *models.Service) {
	if b, err := json.Marshal(svc); err == nil {
		s.rdb.Set(ctx, serviceKey(svc.ID), b, s.ttl)
	}
}

func (s *Store) InvalidateService(ctx context.Context, id uint) {
	s.rdb.Del(ctx, serviceKey(id))
}

// -------- Schedule --------

func (s *Store) GetScheduleHours(ctx context.Context, barberID uint, weekday int) ([]string, bool) {
	raw, err := s.rdb.Get(ctx, scheduleKey(barberID, weekday)).Bytes()
	if err != nil {
		return nil, false
	}

	var hours []string
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, false
	}
	return hours, true
}

func (s *Store) SetScheduleHours(ctx context.Context, barberID uint, weekday int, hours []string) {
	if b, err := json.Marshal(hours); err == nil {
		s.rdb.Set(ctx, scheduleKey(barberID, weekday), b, s.ttl)
	}
}

func (s *Store) InvalidateBarber(ctx context.Context, barberID uint) {
	for weekday := 0; weekday < 7; weekday++ {
		s.rdb.Del(ctx, scheduleKey(barberID, weekday))
	}
}
