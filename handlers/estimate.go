package handlers

import (
	"net/http"
	"time"

	estimateRepo "detailops/database/repository/estimate"
	inspectionRepo "detailops/database/repository/inspection"
	"detailops/middleware"
	"detailops/models"
	"detailops/services/booking"
	"detailops/services/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EstimateHandler computes and persists price estimates for inspections.
type EstimateHandler struct {
	Inspections inspectionRepo.InspectionRepository
	Estimates   estimateRepo.EstimateRepository
	Rates       pricing.BaseRates
	Settings    pricing.ShopSettings
}

func NewEstimateHandler(inspections inspectionRepo.InspectionRepository, estimates estimateRepo.EstimateRepository) *EstimateHandler {
	return &EstimateHandler{
		Inspections: inspections,
		Estimates:   estimates,
		Rates:       pricing.DefaultBaseRates(),
		Settings:    pricing.DefaultShopSettings(),
	}
}

// ComputeEstimate runs the pricing calculator against an inspection and
// persists the resulting breakdown as a draft estimate.
func (h *EstimateHandler) ComputeEstimate(c *gin.Context) {
	var input struct {
		InspectionID string                  `json:"inspectionId" binding:"required"`
		ServiceType  models.ServiceType      `json:"serviceType" binding:"required"`
		Weather      *models.WeatherSnapshot `json:"weather"`
		Surge        *pricing.SurgeFactors   `json:"surge"`
		Discount     int64                   `json:"discount"`
		Materials    int64                   `json:"materialsOverride"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	tenantID := middleware.TenantID(c)
	inspection, err := h.Inspections.GetByID(c.Request.Context(), tenantID, input.InspectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	if inspection == nil {
		respondError(c, booking.NewNotFound("inspection %s not found", input.InspectionID))
		return
	}

	rates := h.Rates
	rates.Discount = input.Discount
	if input.Materials > 0 {
		rates.MaterialOverride = input.Materials
	}

	breakdown := pricing.ComputeEstimate(*inspection, inspection.Damages, input.ServiceType, rates, h.Settings, input.Weather, input.Surge)

	now := time.Now().UTC()
	est := &models.Estimate{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		InspectionID: inspection.ID,
		ServiceType:  input.ServiceType,
		Status:       models.EstimateDraft,
		Breakdown:    breakdown,
		Total:        breakdown.Total,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.Estimates.Create(c.Request.Context(), est); err != nil {
		respondError(c, err)
		return
	}
	if inspection.Status == models.InspectionPending {
		if err := h.Inspections.SetStatus(c.Request.Context(), tenantID, inspection.ID, models.InspectionEstimated); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusCreated, est)
}

// GetEstimate returns one persisted estimate.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	est, err := h.Estimates.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("estimateId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if est == nil {
		respondError(c, booking.NewNotFound("estimate %s not found", c.Param("estimateId")))
		return
	}
	c.JSON(http.StatusOK, est)
}
