package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	Channel = "appointments"
	seqKey  = "appointments:seq"
)

// AppointmentEvent é publicado a cada mutação de agendamento. Seq é
// estritamente crescente; assinantes descartam payloads com seq menor ou
// igual ao último aplicado, protegendo-se de entregas atrasadas.
type AppointmentEvent struct {
	Seq         int64               `json:"seq"`
	Action      string              `json:"action"`
	Appointment *models.Appointment `json:"appointment"`
}

type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish nunca propaga erro: o feed é melhor-esforço e não pode derrubar a
// operação que o originou.
func (p *Publisher) Publish(ctx context.Context, action string, ap *models.Appointment) {
	if p == nil || p.rdb == nil {
		return
	}

	seq, err := p.rdb.Incr(ctx, seqKey).Result()
	if err != nil {
		log.Println("events: seq error:", err)
		return
	}

	payload, err := json.Marshal(AppointmentEvent{
		Seq:         seq,
		Action:      action,
		Appointment: ap,
	})
	if err != nil {
		log.Println("events: marshal error:", err)
		return
	}

	if err := p.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Println("events: publish error:", err)
	}
}
