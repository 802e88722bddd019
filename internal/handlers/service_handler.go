package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/middleware"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceMinor  int64  `json:"price_minor" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`

	// Opcional: quando ausente, cai na regra de classificação pelo nome.
	AllowsRemovalAddOn *bool `json:"allows_removal_addon,omitempty"`
}

type UpdateServiceRequest struct {
	Name               *string `json:"name,omitempty"`
	Description        *string `json:"description,omitempty"`
	Category           *string `json:"category,omitempty"`
	PriceMinor         *int64  `json:"price_minor,omitempty"`
	DurationMin        *int    `json:"duration_min,omitempty"`
	AllowsRemovalAddOn *bool   `json:"allows_removal_addon,omitempty"`
	Active             *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("salon_id = ?", salonID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Service{}).
		Where("salon_id = ? AND name = ?", salonID, name).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_name_already_exists"})
		return
	}

	allows := domain.DefaultAllowsRemovalAddOn(name)
	if req.AllowsRemovalAddOn != nil {
		allows = *req.AllowsRemovalAddOn
	}

	service := models.Service{
		SalonID:            salonID,
		Name:               name,
		Description:        req.Description,
		Category:           req.Category,
		PriceMinor:         req.PriceMinor,
		DurationMin:        req.DurationMin,
		AllowsRemovalAddOn: allows,
		Active:             true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	writeAudit(h.db, salonID, &userID, "service_created", "service", &service.ID, nil)

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_id"})
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.Name != nil && *req.Name != "" {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.PriceMinor != nil {
		service.PriceMinor = *req.PriceMinor
	}
	if req.DurationMin != nil && *req.DurationMin > 0 {
		service.DurationMin = *req.DurationMin
	}
	if req.AllowsRemovalAddOn != nil {
		service.AllowsRemovalAddOn = *req.AllowsRemovalAddOn
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	writeAudit(h.db, salonID, &userID, "service_updated", "service", &service.ID, nil)

	c.JSON(http.StatusOK, service)
}
