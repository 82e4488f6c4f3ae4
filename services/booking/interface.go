package booking

import (
	"context"
	"time"

	"detailops/models"
)

// ReminderScheduler is the deferred-task capability injected into the
// workflow: schedule-at and cancel-by-handle, nothing more. Cancellation is
// best-effort; the worker's live-status recheck absorbs stragglers.
type ReminderScheduler interface {
	Schedule(ctx context.Context, booking models.Booking) ([]models.NotificationJob, error)
	Cancel(ctx context.Context, jobIDs []string)
}

// BookAppointmentRequest carries the caller's inputs for creating a booking.
type BookAppointmentRequest struct {
	InspectionID    string
	RequestedStart  time.Time
	TeamID          string
	EstimateID      string
	Notes           string
	Location        string
	DurationMinutes int // defaults to 120
}

// RescheduleRequest carries the caller's inputs for moving a booking.
type RescheduleRequest struct {
	BookingID string
	NewStart  time.Time
	NewTeamID string
	Reason    string
}

// CancelRequest carries the caller's inputs for cancelling a booking.
type CancelRequest struct {
	BookingID    string
	Reason       string
	RefundAmount int64
}

// BookingService is the sole entry point for booking mutations.
type BookingService interface {
	BookAppointment(ctx context.Context, tenantID string, req BookAppointmentRequest) (*models.BookingResult, error)
	RescheduleAppointment(ctx context.Context, tenantID string, req RescheduleRequest) (*models.RescheduleResult, error)
	CancelAppointment(ctx context.Context, tenantID string, req CancelRequest) (*models.CancelResult, error)
}
