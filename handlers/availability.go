package handlers

import (
	"net/http"
	"time"

	"detailops/middleware"
	"detailops/models"
	"detailops/services/booking"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes admission checks and slot search over HTTP.
type AvailabilityHandler struct {
	Checker   *booking.AvailabilityChecker
	Validator *booking.SlotValidator
}

func NewAvailabilityHandler(checker *booking.AvailabilityChecker, validator *booking.SlotValidator) *AvailabilityHandler {
	return &AvailabilityHandler{Checker: checker, Validator: validator}
}

// CheckAvailability runs one admission check for a slot and team.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var input struct {
		Start           string `json:"start" binding:"required"`
		DurationMinutes int    `json:"durationMinutes"`
		TeamID          string `json:"teamId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	start, err := time.Parse(time.RFC3339, input.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC3339", "details": err.Error()})
		return
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = booking.DefaultSlotMinutes
	}

	slot, err := h.Validator.ValidateSlot(start, duration)
	if err != nil {
		respondError(c, err)
		return
	}
	check, err := h.Checker.Check(c.Request.Context(), middleware.TenantID(c), slot, input.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot, "check": check})
}

// GetTeamAvailability enumerates candidate slots for a team over a date
// range, for calendar displays.
func (h *AvailabilityHandler) GetTeamAvailability(c *gin.Context) {
	teamID := c.Param("teamId")
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC3339", "details": err.Error()})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC3339", "details": err.Error()})
		return
	}

	slots, err := h.Checker.TeamAvailability(c.Request.Context(), middleware.TenantID(c), teamID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teamId": teamID, "slots": slots})
}

// FindBestSlot searches for the least-occupied open slot for a service.
func (h *AvailabilityHandler) FindBestSlot(c *gin.Context) {
	serviceType := models.ServiceType(c.Query("serviceType"))
	if serviceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceType is required"})
		return
	}

	var preferred *time.Time
	if raw := c.Query("preferredDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "preferredDate must be RFC3339", "details": err.Error()})
			return
		}
		preferred = &t
	}

	best, err := h.Checker.FindBestSlot(c.Request.Context(), middleware.TenantID(c), serviceType, preferred, c.Query("teamPreference"))
	if err != nil {
		respondError(c, err)
		return
	}
	if best == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no available slot in the search horizon"})
		return
	}
	c.JSON(http.StatusOK, best)
}
