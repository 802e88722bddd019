package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/calendar"
	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/httpresp"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/middleware"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
	ucBooking "github.com/DigitalJustOne/beautymanager-sub000/internal/usecase/booking"
)

type AgendaHandler struct {
	db *gorm.DB

	createUC    *ucBooking.CreateBooking
	confirmUC   *ucBooking.ConfirmAppointment
	unconfirmUC *ucBooking.UnconfirmAppointment
	cancelUC    *ucBooking.CancelAppointment
	eraseUC     *ucBooking.EraseAppointment
	listDateUC  *ucBooking.ListAgendaByDate
	listMonthUC *ucBooking.ListAgendaByMonth
	daysUC      *ucBooking.GetAvailableDays
	slotsUC     *ucBooking.GetAvailableSlots
}

func NewAgendaHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmAppointment,
	unconfirmUC *ucBooking.UnconfirmAppointment,
	cancelUC *ucBooking.CancelAppointment,
	eraseUC *ucBooking.EraseAppointment,
	listDateUC *ucBooking.ListAgendaByDate,
	listMonthUC *ucBooking.ListAgendaByMonth,
	daysUC *ucBooking.GetAvailableDays,
	slotsUC *ucBooking.GetAvailableSlots,
) *AgendaHandler {
	return &AgendaHandler{
		db:          db,
		createUC:    createUC,
		confirmUC:   confirmUC,
		unconfirmUC: unconfirmUC,
		cancelUC:    cancelUC,
		eraseUC:     eraseUC,
		listDateUC:  listDateUC,
		listMonthUC: listMonthUC,
		daysUC:      daysUC,
		slotsUC:     slotsUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Service        string `json:"service" binding:"required"`
	AddOn          string `json:"addon"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
}

// writeBookingError traduz as falhas do caso de uso para HTTP. Conflitos de
// horário e de identidade viram 409; o front usa o error_code para decidir a
// mensagem.
func writeBookingError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_fields",
			"fields":     vErr.Fields,
		})
		return
	}

	var sErr *domain.SlotConflictError
	if errors.As(err, &sErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error_code":   "slot_taken",
			"time":         sErr.Time,
			"professional": sErr.ProfessionalName,
		})
		return
	}

	var iErr *domain.IdentityConflictError
	if errors.As(err, &iErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error_code": "email_in_use",
			"owner_name": iErr.OwnerName,
		})
		return
	}

	var bErr httperr.BusinessError
	if errors.As(err, &bErr) {
		switch bErr.Code {
		case "appointment_not_found", "professional_not_found":
			httperr.NotFound(c, bErr.Code, bErr.Code)
		case "invalid_state":
			httperr.Write(c, http.StatusConflict, bErr.Code, bErr.Code)
		default:
			httperr.BadRequest(c, bErr.Code, bErr.Code)
		}
		return
	}

	httperr.Internal(c, "internal_error", "unexpected error")
}

// --------- Handlers ---------

// Create agenda em nome do cliente (balcão/telefone). Quem agenda é staff,
// então o agendamento já nasce confirmado.
func (h *AgendaHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		SalonID:        salonID,
		ProfessionalID: req.ProfessionalID,
		ServiceName:    req.Service,
		AddOn:          req.AddOn,
		Date:           req.Date,
		Time:           req.Time,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		ActorRole:      role,
		ActorUserID:    &actorID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ListByDate devolve a agenda de um dia (?date=YYYY-MM-DD, default hoje).
func (h *AgendaHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	date := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	items, err := h.listDateUC.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", err.Error())
		return
	}

	httpresp.List(c, items)
}

// ListByMonth devolve a agenda de um mês (?year=&month=) para o calendário.
func (h *AgendaHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "expected ?year=YYYY")
		return
	}

	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		httperr.BadRequest(c, "invalid_month", "expected ?month=1..12")
		return
	}

	items, err := h.listMonthUC.Execute(c.Request.Context(), salonID, year, time.Month(monthNum))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", err.Error())
		return
	}

	httpresp.List(c, items)
}

// AvailableDays lista as datas agendáveis do profissional no horizonte.
func (h *AgendaHandler) AvailableDays(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "expected ?professional_id=")
		return
	}

	days, err := h.daysUC.Execute(c.Request.Context(), salonID, uint(professionalID))
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// AvailableSlots lista os horários livres de um dia para o serviço pedido.
func (h *AgendaHandler) AvailableSlots(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "expected ?professional_id=")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		SalonID:        salonID,
		ProfessionalID: uint(professionalID),
		ServiceName:    c.Query("service"),
		AddOn:          c.Query("addon"),
		Date:           c.Query("date"),
		ActorRole:      role,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *AgendaHandler) appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "expected numeric id")
		return 0, false
	}
	return uint(id), true
}

func (h *AgendaHandler) Confirm(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), salonID, actorID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AgendaHandler) Unconfirm(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.unconfirmUC.Execute(c.Request.Context(), salonID, actorID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AgendaHandler) Cancel(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), salonID, actorID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// Erase apaga de vez. Sem ?force=true só aceita agendamentos já cancelados;
// com force, é restrito a admin.
func (h *AgendaHandler) Erase(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	force := c.Query("force") == "true"
	if force && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.eraseUC.Execute(c.Request.Context(), salonID, actorID, id, force); err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CalendarLink devolve o deep-link do Google Calendar de um agendamento.
func (h *AgendaHandler) CalendarLink(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "failed_to_load_salon", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": calendar.GoogleLink(ap, salon.Name)})
}
