package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberHandler struct {
	db       *gorm.DB
	cache    *cache.Store
	uploader *media.Uploader
}

func NewBarberHandler(db *gorm.DB, store *cache.Store, uploader *media.Uploader) *BarberHandler {
	return &BarberHandler{db: db, cache: store, uploader: uploader}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Active *bool   `json:"active"`
}

type ScheduleDayConfig struct {
	Weekday int      `json:"weekday" binding:"min=0,max=6"`
	Hours   []string `json:"hours"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

// List é público: o app mostra os barbeiros ativos para seleção.
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber := models.Barber{
		PublicID: uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		Active:   true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	barber.Active = false
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao excluir barbeiro.")
		return
	}

	h.cache.InvalidateBarber(c.Request.Context(), barber.ID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *BarberHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var scheds []models.BarberSchedule
	if err := h.db.
		Where("barber_id = ?", barber.ID).
		Order("weekday ASC").
		Find(&scheds).Error; err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, scheds)
}

func (h *BarberHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, d := range req.Days {
		if err := validateScheduleHours(d.Hours); err != nil {
			httperr.BadRequest(c, "invalid_schedule", "Horários inválidos.")
			return
		}
	}

	if err := h.db.Where("barber_id = ?", barber.ID).Delete(&models.BarberSchedule{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_schedule", "Erro ao salvar horários.")
		return
	}

	var toCreate []models.BarberSchedule
	for _, d := range req.Days {
		if len(d.Hours) == 0 {
			continue
		}

		raw, err := json.Marshal(d.Hours)
		if err != nil {
			httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
			return
		}

		toCreate = append(toCreate, models.BarberSchedule{
			BarberID: barber.ID,
			Weekday:  d.Weekday,
			Hours:    datatypes.JSON(raw),
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
			return
		}
	}

	h.cache.InvalidateBarber(c.Request.Context(), barber.ID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// horários precisam ser rótulos válidos, estritamente crescentes e
// alinhados em 30 minutos
func validateScheduleHours(hours []string) error {
	prev := -1
	for _, label := range hours {
		m, err := domain.MinutesFromLabel(label)
		if err != nil {
			return err
		}
		if m%30 != 0 || m <= prev {
			return httperr.ErrBusiness("invalid_schedule")
		}
		prev = m
	}
	return nil
}

// ======================================================
// PHOTO
// ======================================================

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Envie o arquivo no campo 'photo'.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadBarberPhoto(c.Request.Context(), barber.PublicID, file)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
			return
		}
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	barber.PhotoURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
