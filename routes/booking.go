package routes

import (
	"detailops/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers admission-check and slot-search
// endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/v1")
	{
		api.Use(middleware.TenantAuthMiddleware())
		api.POST("/availability/check", hb.Availability.CheckAvailability)
		api.GET("/availability/best-slot", hb.Availability.FindBestSlot)
		api.GET("/teams/:teamId/availability", hb.Availability.GetTeamAvailability)
	}
}

// RegisterBookingRoutes registers the booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/v1/bookings")
	{
		api.Use(middleware.TenantAuthMiddleware())
		api.POST("", hb.Booking.BookAppointment)
		api.PUT("/:bookingId/reschedule", hb.Booking.RescheduleAppointment)
		api.DELETE("/:bookingId", hb.Booking.CancelAppointment)
	}
}

// RegisterEstimateRoutes registers pricing endpoints.
func RegisterEstimateRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/v1/estimates")
	{
		api.Use(middleware.TenantAuthMiddleware())
		api.POST("/compute", hb.Estimate.ComputeEstimate)
		api.GET("/:estimateId", hb.Estimate.GetEstimate)
	}
}
