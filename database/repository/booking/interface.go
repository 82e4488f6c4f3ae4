package bookingRepo

import (
	"context"
	"time"

	"detailops/models"
)

// BookingRepository provides tenant-scoped access to booking records.
type BookingRepository interface {
	// CreateWithInspectionUpdate inserts the booking and flips the source
	// inspection to "booked" inside one transaction.
	CreateWithInspectionUpdate(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, tenantID, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	// FindOverlapping returns bookings for the team whose half-open interval
	// [scheduledStart, scheduledEnd) overlaps [start, end) and whose status
	// still counts against capacity.
	FindOverlapping(ctx context.Context, tenantID, teamID string, start, end time.Time) ([]models.Booking, error)
	// DeleteStale removes still-scheduled or cancelled records older than the
	// cutoff. Used by the nightly cleanup job only.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
