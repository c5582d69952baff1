package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/events"
)

// EventsHandler expõe o feed de mudanças de agendamentos como SSE.
// Cada payload carrega um seq crescente; clientes descartam entregas
// atrasadas comparando com o último seq aplicado.
type EventsHandler struct {
	rdb *redis.Client
}

func NewEventsHandler(rdb *redis.Client) *EventsHandler {
	return &EventsHandler{rdb: rdb}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sub := h.rdb.Subscribe(ctx, events.Channel)
	defer sub.Close()

	ch := sub.Channel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("appointment", msg.Payload)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
