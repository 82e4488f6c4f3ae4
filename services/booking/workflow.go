package booking

import (
	"context"
	"math"
	"time"

	bookingRepo "detailops/database/repository/booking"
	estimateRepo "detailops/database/repository/estimate"
	inspectionRepo "detailops/database/repository/inspection"
	"detailops/models"
	"detailops/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService orchestrates the slot validator, admission checker,
// pricing and reminder scheduling into atomic booking mutations.
type DefaultBookingService struct {
	Registry    *TeamRegistry
	Validator   *SlotValidator
	Checker     *AvailabilityChecker
	Bookings    bookingRepo.BookingRepository
	Estimates   estimateRepo.EstimateRepository
	Inspections inspectionRepo.InspectionRepository
	Reminders   ReminderScheduler
	Locker      TeamLocker
	Now         func() time.Time
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// surgeAmount converts a multiplier into the additional charge on top of the
// approved estimate total.
func surgeAmount(estimateTotal int64, multiplier float64) int64 {
	return int64(math.Round(float64(estimateTotal) * (multiplier - 1)))
}

// resolveApprovedEstimate finds the estimate a booking must be priced from:
// the explicit one (which must be approved) or the first approved estimate
// attached to the inspection.
func (svc *DefaultBookingService) resolveApprovedEstimate(ctx context.Context, tenantID, inspectionID, estimateID string) (*models.Estimate, error) {
	if estimateID != "" {
		estimate, err := svc.Estimates.GetByID(ctx, tenantID, estimateID)
		if err != nil {
			return nil, err
		}
		if estimate == nil {
			return nil, NewNotFound("estimate %s not found", estimateID)
		}
		if estimate.Status != models.EstimateApproved {
			return nil, NewPreconditionFailed("estimate %s is %s, an approved estimate is required", estimateID, estimate.Status)
		}
		return estimate, nil
	}

	estimate, err := svc.Estimates.FirstApprovedForInspection(ctx, tenantID, inspectionID)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, NewPreconditionFailed("no approved estimate exists for inspection %s", inspectionID)
	}
	return estimate, nil
}

// BookAppointment creates a booking from an inspection's approved estimate.
// The admission check and the booking insert run under a per-team lock so
// concurrent attempts cannot overshoot team capacity.
func (svc *DefaultBookingService) BookAppointment(ctx context.Context, tenantID string, req BookAppointmentRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()
	if tenantID == "" {
		return nil, NewUnauthorized("missing tenant context")
	}

	inspection, err := svc.Inspections.GetByID(ctx, tenantID, req.InspectionID)
	if err != nil {
		return nil, err
	}
	if inspection == nil {
		return nil, NewNotFound("inspection %s not found", req.InspectionID)
	}

	estimate, err := svc.resolveApprovedEstimate(ctx, tenantID, req.InspectionID, req.EstimateID)
	if err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = DefaultSlotMinutes
	}
	slot, err := svc.Validator.ValidateSlot(req.RequestedStart, duration)
	if err != nil {
		return nil, err
	}

	team, err := svc.Registry.Get(req.TeamID)
	if err != nil {
		return nil, err
	}
	if !team.HasSkill(estimate.ServiceType) {
		return nil, NewInvalidInput("team %s does not offer %s", team.ID, estimate.ServiceType)
	}
	slot.TeamID = team.ID
	slot.Capacity = team.MaxConcurrentJobs

	release, err := svc.Locker.Acquire(ctx, tenantID, team.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	check, err := svc.Checker.Check(ctx, tenantID, slot, team.ID)
	if err != nil {
		return nil, err
	}
	if !check.IsAvailable {
		return nil, NewConflict("slot %s is unavailable for team %s (%d/%d booked)",
			slot.Start.Format(time.RFC3339), team.ID, check.CurrentOccupancy, check.MaxCapacity)
	}

	pricing := models.BookingPricing{
		EstimateTotal:   estimate.Total,
		SurgeRequired:   check.SurgeRequired,
		SurgeMultiplier: check.SurgeMultiplier,
		FinalAmount:     estimate.Total,
	}
	if check.SurgeRequired {
		pricing.SurgeAmount = surgeAmount(estimate.Total, check.SurgeMultiplier)
		pricing.FinalAmount += pricing.SurgeAmount
	}

	now := svc.now()
	booking := models.Booking{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		InspectionID:    inspection.ID,
		EstimateID:      estimate.ID,
		BookingNumber:   GenerateBookingNumber(now),
		Customer:        inspection.Customer,
		Vehicle:         inspection.Vehicle,
		ServiceType:     estimate.ServiceType,
		Status:          models.BookingScheduled,
		ScheduledStart:  slot.Start,
		ScheduledEnd:    slot.End,
		AssignedTeamID:  team.ID,
		Location:        req.Location,
		Instructions:    req.Notes,
		TotalAmount:     pricing.FinalAmount,
		PaidAmount:      0,
		PaymentStatus:   models.PaymentPending,
		SurgeMultiplier: pricing.SurgeMultiplier,
		SurgeAmount:     pricing.SurgeAmount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := svc.Bookings.CreateWithInspectionUpdate(ctx, &booking); err != nil {
		return nil, err
	}

	svc.enqueueReminders(ctx, &booking, logger)

	return &models.BookingResult{Booking: booking, Pricing: pricing, Slot: slot}, nil
}

// enqueueReminders schedules reminder jobs and persists the handles.
// Failures here are logged and never roll back the booking.
func (svc *DefaultBookingService) enqueueReminders(ctx context.Context, booking *models.Booking, logger *zap.Logger) {
	jobs, err := svc.Reminders.Schedule(ctx, *booking)
	if err != nil {
		logger.Error("failed to enqueue booking reminders",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
	if len(jobs) == 0 {
		return
	}
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	booking.NotificationJobIDs = ids
	if err := svc.Bookings.Update(ctx, booking); err != nil {
		logger.Error("failed to persist reminder job handles",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// RescheduleAppointment moves a booking to a new slot and possibly a new
// team. Surge is recomputed against the original approved-estimate total so
// repeated reschedules never compound.
func (svc *DefaultBookingService) RescheduleAppointment(ctx context.Context, tenantID string, req RescheduleRequest) (*models.RescheduleResult, error) {
	logger := utils.GetLogger()
	if tenantID == "" {
		return nil, NewUnauthorized("missing tenant context")
	}

	booking, err := svc.Bookings.GetByID(ctx, tenantID, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFound("booking %s not found", req.BookingID)
	}
	if booking.Status.IsTerminal() {
		return nil, NewConflict("booking %s is %s and cannot be rescheduled", booking.ID, booking.Status)
	}

	duration := int(booking.ScheduledEnd.Sub(booking.ScheduledStart).Minutes())
	slot, err := svc.Validator.ValidateSlot(req.NewStart, duration)
	if err != nil {
		return nil, err
	}

	teamID := req.NewTeamID
	if teamID == "" {
		teamID = booking.AssignedTeamID
	}
	team, err := svc.Registry.Get(teamID)
	if err != nil {
		return nil, err
	}
	if !team.HasSkill(booking.ServiceType) {
		return nil, NewInvalidInput("team %s does not offer %s", team.ID, booking.ServiceType)
	}
	slot.TeamID = team.ID
	slot.Capacity = team.MaxConcurrentJobs

	estimate, err := svc.resolveApprovedEstimate(ctx, tenantID, booking.InspectionID, booking.EstimateID)
	if err != nil {
		return nil, err
	}

	release, err := svc.Locker.Acquire(ctx, tenantID, team.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	check, err := svc.Checker.CheckExcluding(ctx, tenantID, slot, team.ID, booking.ID)
	if err != nil {
		return nil, err
	}
	if !check.IsAvailable {
		return nil, NewConflict("slot %s is unavailable for team %s (%d/%d booked)",
			slot.Start.Format(time.RFC3339), team.ID, check.CurrentOccupancy, check.MaxCapacity)
	}

	pricing := models.BookingPricing{
		EstimateTotal:   estimate.Total,
		SurgeRequired:   check.SurgeRequired,
		SurgeMultiplier: check.SurgeMultiplier,
		FinalAmount:     estimate.Total,
	}
	if check.SurgeRequired {
		pricing.SurgeAmount = surgeAmount(estimate.Total, check.SurgeMultiplier)
		pricing.FinalAmount += pricing.SurgeAmount
	}

	prevStart, prevEnd, prevAmount := booking.ScheduledStart, booking.ScheduledEnd, booking.TotalAmount
	staleJobIDs := booking.NotificationJobIDs

	booking.ScheduledStart = slot.Start
	booking.ScheduledEnd = slot.End
	booking.AssignedTeamID = team.ID
	booking.TotalAmount = pricing.FinalAmount
	booking.SurgeMultiplier = pricing.SurgeMultiplier
	booking.SurgeAmount = pricing.SurgeAmount
	if req.Reason != "" {
		booking.Instructions = req.Reason
	}
	booking.NotificationJobIDs = nil

	if err := svc.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	// Stale jobs are cancelled only after the write lands; a job firing in
	// the gap is caught by the worker's live-status recheck, but a job
	// deleted before a failed write is gone for good.
	svc.Reminders.Cancel(ctx, staleJobIDs)
	svc.enqueueReminders(ctx, booking, logger)

	return &models.RescheduleResult{
		Booking:        *booking,
		PreviousStart:  prevStart,
		PreviousEnd:    prevEnd,
		PreviousAmount: prevAmount,
		Slot:           slot,
		Pricing:        pricing,
	}, nil
}

// CancelAppointment cancels a booking and performs refund bookkeeping. The
// state machine rejects cancellation of completed or already-cancelled
// bookings.
func (svc *DefaultBookingService) CancelAppointment(ctx context.Context, tenantID string, req CancelRequest) (*models.CancelResult, error) {
	if tenantID == "" {
		return nil, NewUnauthorized("missing tenant context")
	}

	booking, err := svc.Bookings.GetByID(ctx, tenantID, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFound("booking %s not found", req.BookingID)
	}

	if err := Transition(booking, models.BookingCancelled); err != nil {
		return nil, err
	}
	booking.CancelReason = req.Reason

	if req.RefundAmount > 0 {
		booking.PaidAmount -= req.RefundAmount
		if booking.PaidAmount <= 0 {
			booking.PaidAmount = 0
			booking.PaymentStatus = models.PaymentRefunded
		} else {
			booking.PaymentStatus = models.PaymentPartial
		}
	}

	staleJobIDs := booking.NotificationJobIDs
	booking.NotificationJobIDs = nil

	if err := svc.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	svc.Reminders.Cancel(ctx, staleJobIDs)

	return &models.CancelResult{Booking: *booking, RefundAmount: req.RefundAmount}, nil
}
