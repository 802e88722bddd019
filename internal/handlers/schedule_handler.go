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

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

type ScheduleDayConfig struct {
	Day       string `json:"day" binding:"required"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

// professionalParam resolve o alvo da agenda: o próprio usuário, outro
// profissional (?professional_id=) ou o padrão do salão (professional_id=0,
// só admin).
func (h *ScheduleHandler) professionalParam(c *gin.Context) (uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	raw := strings.TrimSpace(c.Query("professional_id"))
	if raw == "" {
		return userID, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_professional_id"})
		return 0, false
	}

	if uint(id) != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return 0, false
	}

	return uint(id), true
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	professionalID, ok := h.professionalParam(c)
	if !ok {
		return
	}

	var days []models.ScheduleDay
	if err := h.db.
		Where("salon_id = ? AND professional_id = ?", salonID, professionalID).
		Order("id ASC").
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	c.JSON(http.StatusOK, days)
}

// Update substitui a agenda semanal inteira (uma entrada por dia).
func (h *ScheduleHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	professionalID, ok := h.professionalParam(c)
	if !ok {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[string]bool{}
	var toCreate []models.ScheduleDay

	for _, d := range req.Days {
		day := strings.ToLower(strings.TrimSpace(d.Day))
		if !weekdayNames[day] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_weekday", "day": d.Day})
			return
		}
		if seen[day] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicated_weekday", "day": d.Day})
			return
		}
		seen[day] = true

		// Invariante: com o dia habilitado, início < fim.
		if d.Enabled {
			start, err1 := domain.ParseClock(d.StartTime)
			end, err2 := domain.ParseClock(d.EndTime)
			if err1 != nil || err2 != nil || start >= end {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_window", "day": d.Day})
				return
			}
		}

		toCreate = append(toCreate, models.ScheduleDay{
			SalonID:        salonID,
			ProfessionalID: professionalID,
			Day:            day,
			Enabled:        d.Enabled,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
		})
	}

	if err := h.db.
		Where("salon_id = ? AND professional_id = ?", salonID, professionalID).
		Delete(&models.ScheduleDay{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_schedule"})
		return
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
			return
		}
	}

	writeAudit(h.db, salonID, &actorID, "schedule_updated", "schedule", &professionalID, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
