package handlers

import (
	"net/http"
	"time"

	"detailops/middleware"
	"detailops/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookAppointment creates a booking from an inspection's approved estimate.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var input struct {
		InspectionID    string `json:"inspectionId" binding:"required"`
		RequestedStart  string `json:"requestedStart" binding:"required"`
		TeamID          string `json:"teamId" binding:"required"`
		EstimateID      string `json:"estimateId"`
		Notes           string `json:"notes"`
		Location        string `json:"location"`
		DurationMinutes int    `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	start, err := time.Parse(time.RFC3339, input.RequestedStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requestedStart must be RFC3339", "details": err.Error()})
		return
	}

	result, err := h.Service.BookAppointment(c.Request.Context(), middleware.TenantID(c), booking.BookAppointmentRequest{
		InspectionID:    input.InspectionID,
		RequestedStart:  start,
		TeamID:          input.TeamID,
		EstimateID:      input.EstimateID,
		Notes:           input.Notes,
		Location:        input.Location,
		DurationMinutes: input.DurationMinutes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RescheduleAppointment moves an existing booking.
func (h *BookingHandler) RescheduleAppointment(c *gin.Context) {
	var input struct {
		NewStart  string `json:"newStart" binding:"required"`
		NewTeamID string `json:"newTeamId"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	newStart, err := time.Parse(time.RFC3339, input.NewStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newStart must be RFC3339", "details": err.Error()})
		return
	}

	result, err := h.Service.RescheduleAppointment(c.Request.Context(), middleware.TenantID(c), booking.RescheduleRequest{
		BookingID: c.Param("bookingId"),
		NewStart:  newStart,
		NewTeamID: input.NewTeamID,
		Reason:    input.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelAppointment cancels a booking, optionally recording a refund.
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	var input struct {
		Reason       string `json:"reason" binding:"required"`
		RefundAmount int64  `json:"refundAmount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.CancelAppointment(c.Request.Context(), middleware.TenantID(c), booking.CancelRequest{
		BookingID:    c.Param("bookingId"),
		Reason:       input.Reason,
		RefundAmount: input.RefundAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
