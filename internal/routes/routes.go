package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/audit"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/cache"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/config"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/handlers"
	infraRepo "github.com/DigitalJustOne/beautymanager-sub000/internal/infra/repository"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/middleware"
	ucBooking "github.com/DigitalJustOne/beautymanager-sub000/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.New(cfg.RedisAddr)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	confirmUC := ucBooking.NewConfirmAppointment(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	unconfirmUC := ucBooking.NewUnconfirmAppointment(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	eraseUC := ucBooking.NewEraseAppointment(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	listByDateUC := ucBooking.NewListAgendaByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListAgendaByMonth(bookingRepo)

	availableDaysUC := ucBooking.NewGetAvailableDays(bookingRepo)
	availableSlotsUC := ucBooking.NewGetAvailableSlots(bookingRepo, availabilityCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)

	agendaHandler := handlers.NewAgendaHandler(
		db,
		createBookingUC,
		confirmUC,
		unconfirmUC,
		cancelUC,
		eraseUC,
		listByDateUC,
		listByMonthUC,
		availableDaysUC,
		availableSlotsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		createBookingUC,
		cancelUC,
		availableDaysUC,
		availableSlotsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (por slug do salão)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/:slug/availability/days", publicHandler.AvailableDays)
			publicAPI.GET("/:slug/availability/slots", publicHandler.AvailableSlots)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/:slug/appointments/:ref", publicHandler.GetAppointment)
			publicAPI.PATCH("/:slug/appointments/:ref/cancel", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)

			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.POST("/me/appointments", agendaHandler.Create)
			secured.GET("/me/appointments", agendaHandler.ListByDate)
			secured.GET("/me/appointments/month", agendaHandler.ListByMonth)
			secured.GET("/me/availability/days", agendaHandler.AvailableDays)
			secured.GET("/me/availability/slots", agendaHandler.AvailableSlots)
			secured.PATCH("/me/appointments/:id/confirm", agendaHandler.Confirm)
			secured.PATCH("/me/appointments/:id/unconfirm", agendaHandler.Unconfirm)
			secured.PATCH("/me/appointments/:id/cancel", agendaHandler.Cancel)
			secured.DELETE("/me/appointments/:id", agendaHandler.Erase)
			secured.GET("/me/appointments/:id/calendar-link", agendaHandler.CalendarLink)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
