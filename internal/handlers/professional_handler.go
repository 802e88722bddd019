package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/httpresp"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/middleware"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	// Nomes de serviços do catálogo que o profissional atende.
	Specialties []string `json:"specialties"`
}

// --------- Handlers ---------

// List devolve os profissionais do salão, com especialidades, para montar o
// seletor de agendamento. Filtro opcional ?service= mostra só quem atende
// aquele serviço.
func (h *ProfessionalHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	service := strings.TrimSpace(c.Query("service"))

	var profs []models.User
	if err := h.db.
		Preload("Specialties").
		Where("salon_id = ? AND role = ?", salonID, models.RoleProfessional).
		Order("name ASC").
		Find(&profs).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	if service == "" {
		httpresp.List(c, profs)
		return
	}

	filtered := make([]models.User, 0, len(profs))
	for _, p := range profs {
		// Sem especialidades cadastradas = atende tudo.
		if len(p.Specialties) == 0 {
			filtered = append(filtered, p)
			continue
		}
		for _, sp := range p.Specialties {
			if sp.ServiceName == service {
				filtered = append(filtered, p)
				break
			}
		}
	}

	httpresp.List(c, filtered)
}

// Create cadastra um profissional (login próprio + especialidades).
func (h *ProfessionalHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	prof := models.User{
		SalonID:      salonID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleProfessional,
	}

	for _, s := range req.Specialties {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		prof.Specialties = append(prof.Specialties, models.Specialty{ServiceName: s})
	}

	if err := h.db.Create(&prof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_professional"})
		return
	}

	writeAudit(h.db, salonID, &actorID, "professional_created", "user", &prof.ID, nil)

	c.JSON(http.StatusCreated, prof)
}
