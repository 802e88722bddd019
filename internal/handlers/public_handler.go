package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/dto"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
	ucBooking "github.com/DigitalJustOne/beautymanager-sub000/internal/usecase/booking"
)

// PublicHandler atende a página de auto-agendamento do cliente, sem login.
// O salão é resolvido pelo slug da URL.
type PublicHandler struct {
	db *gorm.DB

	createUC *ucBooking.CreateBooking
	cancelUC *ucBooking.CancelAppointment
	daysUC   *ucBooking.GetAvailableDays
	slotsUC  *ucBooking.GetAvailableSlots
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelAppointment,
	daysUC *ucBooking.GetAvailableDays,
	slotsUC *ucBooking.GetAvailableSlots,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		createUC: createUC,
		cancelUC: cancelUC,
		daysUC:   daysUC,
		slotsUC:  slotsUC,
	}
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return nil, false
	}
	return &salon, true
}

// ListServices expõe só o catálogo ativo, sem campos internos.
func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", err.Error())
		return
	}

	type publicService struct {
		Name               string `json:"name"`
		Description        string `json:"description"`
		Category           string `json:"category"`
		PriceMinor         int64  `json:"price_minor"`
		DurationMin        int    `json:"duration_min"`
		AllowsRemovalAddOn bool   `json:"allows_removal_addon"`
	}

	out := make([]publicService, 0, len(services))
	for _, s := range services {
		out = append(out, publicService{
			Name:               s.Name,
			Description:        s.Description,
			Category:           s.Category,
			PriceMinor:         s.PriceMinor,
			DurationMin:        s.DurationMin,
			AllowsRemovalAddOn: s.AllowsRemovalAddOn,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    gin.H{"name": salon.Name, "address": salon.Address},
		"services": out,
	})
}

// ListProfessionals lista os profissionais escolhíveis, com ?service= opcional.
func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	service := c.Query("service")

	var profs []models.User
	if err := h.db.
		Preload("Specialties").
		Where("salon_id = ? AND role = ?", salon.ID, models.RoleProfessional).
		Order("name ASC").
		Find(&profs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", err.Error())
		return
	}

	type publicProfessional struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	out := make([]publicProfessional, 0, len(profs))
	for _, p := range profs {
		if service != "" && len(p.Specialties) > 0 {
			serves := false
			for _, sp := range p.Specialties {
				if sp.ServiceName == service {
					serves = true
					break
				}
			}
			if !serves {
				continue
			}
		}
		out = append(out, publicProfessional{ID: p.ID, Name: p.Name})
	}

	c.JSON(http.StatusOK, out)
}

// AvailableDays lista as datas agendáveis do profissional escolhido.
func (h *PublicHandler) AvailableDays(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "expected ?professional_id=")
		return
	}

	days, err := h.daysUC.Execute(c.Request.Context(), salon.ID, uint(professionalID))
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// AvailableSlots lista os horários livres. O papel aqui é sempre cliente,
// então o corte de hoje tem a folga de 30 minutos.
func (h *PublicHandler) AvailableSlots(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "expected ?professional_id=")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		SalonID:        salon.ID,
		ProfessionalID: uint(professionalID),
		ServiceName:    c.Query("service"),
		AddOn:          c.Query("addon"),
		Date:           c.Query("date"),
		ActorRole:      models.RoleClient,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

type PublicCreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Service        string `json:"service" binding:"required"`
	AddOn          string `json:"addon"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// CreateAppointment é o auto-agendamento: nasce pendente até o salão
// confirmar.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		SalonID:        salon.ID,
		ProfessionalID: req.ProfessionalID,
		ServiceName:    req.Service,
		AddOn:          req.AddOn,
		Date:           req.Date,
		Time:           req.Time,
		ClientName:     req.Name,
		ClientPhone:    req.Phone,
		ClientEmail:    req.Email,
		ActorRole:      models.RoleClient,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ref":    ap.Ref,
		"date":   ap.Date.Format("2006-01-02"),
		"time":   ap.TimeOfDay,
		"status": ap.Status,
	})
}

// GetAppointment consulta um agendamento pelo código público, sem expor o id
// serial nem dados de outros clientes.
func (h *PublicHandler) GetAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("ref = ? AND salon_id = ?", c.Param("ref"), salon.ID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}

	item := dto.NewAgendaItem(ap, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"ref":          ap.Ref,
		"date":         item.Date,
		"time":         item.Time,
		"end_time":     item.EndTime,
		"service":      ap.ServiceName,
		"professional": ap.ProfessionalName,
		"status":       item.Status,
		"status_label": item.StatusLabel,
	})
}

// CancelAppointment é o auto-cancelamento pelo código público.
func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.ExecuteByRef(c.Request.Context(), salon.ID, c.Param("ref"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ref":    ap.Ref,
		"status": ap.Status,
	})
}
