package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type AvailabilityHandler struct {
	cfg            *config.Config
	availabilityUC *booking.GetAvailability
	daysUC         *booking.GetBookableDays
}

func NewAvailabilityHandler(
	cfg *config.Config,
	availabilityUC *booking.GetAvailability,
	daysUC *booking.GetBookableDays,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		cfg:            cfg,
		availabilityUC: availabilityUC,
		daysUC:         daysUC,
	}
}

////////////////////////////////////////////////////////
// DAYS (próximos 7 dias em que o barbeiro trabalha)
////////////////////////////////////////////////////////

func (h *AvailabilityHandler) Days(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	days, err := h.daysUC.Execute(
		c.Request.Context(),
		uint(barberID),
		nowInShop(h.cfg),
	)
	if err != nil {
		httperr.Internal(c, "days_failed", "Erro ao calcular os dias.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *AvailabilityHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDateInShop(h.cfg, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// service_id é opcional: sem serviço escolhido a duração é zero
	var serviceID uint64
	if s := c.Query("service_id"); s != "" {
		serviceID, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
			return
		}
	}

	result, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:  uint(barberID),
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
		case httperr.IsBusiness(err, "unknown_service"):
			httperr.Internal(c, "unknown_service", "Agendamento com serviço desconhecido.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	resp := gin.H{
		"date":  dateStr,
		"hours": result.Hours,
	}
	if result.Degraded {
		// aviso não-bloqueante: conflitos podem não ter sido detectados
		resp["stale_warning"] = true
	}

	c.JSON(http.StatusOK, resp)
}
