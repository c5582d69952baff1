package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	store := cache.NewStore(rdb)
	bookingRepo := infraRepo.NewBookingGormRepository(db, store)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	publisher := events.NewPublisher(rdb)
	uploader := media.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	daysUC := ucBooking.NewGetBookableDays(bookingRepo)

	getUC := ucBooking.NewGetAppointment(bookingRepo)

	createUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		publisher,
		cfg.ShopTimezone,
		cfg.MinAdvanceMinutes,
	)

	rescheduleUC := ucBooking.NewRescheduleAppointment(
		bookingRepo,
		auditDispatcher,
		publisher,
		cfg.ShopTimezone,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		publisher,
		cfg.ShopTimezone,
	)

	completeUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
		publisher,
		cfg.ShopTimezone,
	)

	deleteUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
		publisher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo, cfg.ShopTimezone)
	listByMonthUC := ucBooking.NewListAppointmentsByMonth(bookingRepo, cfg.ShopTimezone)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, store)
	barberHandler := handlers.NewBarberHandler(db, store, uploader)

	availabilityHandler := handlers.NewAvailabilityHandler(cfg, availabilityUC, daysUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		createUC,
		getUC,
		rescheduleUC,
		cancelUC,
		completeUC,
		deleteUC,
		listByDateUC,
		listByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	eventsHandler := handlers.NewEventsHandler(rdb)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (fluxo de agendamento)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id/days", availabilityHandler.Days)
		api.GET("/barbers/:id/availability", availabilityHandler.Availability)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// BARBERS
			// ------------------------------
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)
			secured.GET("/barbers/:id/schedule", barberHandler.GetSchedule)
			secured.PUT("/barbers/:id/schedule", barberHandler.UpdateSchedule)
			secured.POST("/barbers/:id/photo", barberHandler.UploadPhoto)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// FEED DE MUDANÇAS (SSE)
			// ------------------------------
			secured.GET("/events/appointments", eventsHandler.Stream)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PATCH("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
