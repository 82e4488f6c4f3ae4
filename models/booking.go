package models

import "time"

// BookingStatus is the booking lifecycle state. Transitions are enforced by
// the workflow's transition table; completed and cancelled are terminal.
type BookingStatus string

const (
	BookingScheduled  BookingStatus = "scheduled"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
)

// IsActive reports whether the status counts against team capacity.
func (s BookingStatus) IsActive() bool {
	switch s {
	case BookingScheduled, BookingConfirmed, BookingInProgress:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// PaymentStatus tracks how much of the booking total has been settled.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// CustomerContact is the customer snapshot frozen onto a booking.
type CustomerContact struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// VehicleInfo is the vehicle snapshot frozen onto a booking.
type VehicleInfo struct {
	Make         string `bson:"make" json:"make"`
	Model        string `bson:"model" json:"model"`
	Year         int    `bson:"year,omitempty" json:"year,omitempty"`
	Color        string `bson:"color,omitempty" json:"color,omitempty"`
	LicensePlate string `bson:"licensePlate,omitempty" json:"licensePlate,omitempty"`
}

// Booking is the central scheduling aggregate. All monetary amounts are
// integer cents.
type Booking struct {
	ID                 string          `bson:"id" json:"id"`
	TenantID           string          `bson:"tenantId" json:"tenantId"`
	InspectionID       string          `bson:"inspectionId,omitempty" json:"inspectionId,omitempty"`
	EstimateID         string          `bson:"estimateId,omitempty" json:"estimateId,omitempty"`
	BookingNumber      string          `bson:"bookingNumber" json:"bookingNumber"`
	Customer           CustomerContact `bson:"customer" json:"customer"`
	Vehicle            VehicleInfo     `bson:"vehicle" json:"vehicle"`
	ServiceType        ServiceType     `bson:"serviceType" json:"serviceType"`
	Status             BookingStatus   `bson:"status" json:"status"`
	ScheduledStart     time.Time       `bson:"scheduledStart" json:"scheduledStart"`
	ScheduledEnd       time.Time       `bson:"scheduledEnd" json:"scheduledEnd"`
	ActualStart        *time.Time      `bson:"actualStart,omitempty" json:"actualStart,omitempty"`
	ActualEnd          *time.Time      `bson:"actualEnd,omitempty" json:"actualEnd,omitempty"`
	AssignedTeamID     string          `bson:"assignedTeamId" json:"assignedTeamId"`
	Location           string          `bson:"location,omitempty" json:"location,omitempty"`
	Instructions       string          `bson:"instructions,omitempty" json:"instructions,omitempty"`
	TotalAmount        int64           `bson:"totalAmount" json:"totalAmount"`
	PaidAmount         int64           `bson:"paidAmount" json:"paidAmount"`
	PaymentStatus      PaymentStatus   `bson:"paymentStatus" json:"paymentStatus"`
	SurgeMultiplier    float64         `bson:"surgeMultiplier,omitempty" json:"surgeMultiplier,omitempty"`
	SurgeAmount        int64           `bson:"surgeAmount,omitempty" json:"surgeAmount,omitempty"`
	CancelReason       string          `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	NotificationJobIDs []string        `bson:"notificationJobIds,omitempty" json:"notificationJobIds,omitempty"`
	CreatedAt          time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// BookingPricing summarizes how the chargeable amount for a booking was
// derived from its approved estimate.
type BookingPricing struct {
	EstimateTotal   int64   `json:"estimateTotal"`
	SurgeRequired   bool    `json:"surgeRequired"`
	SurgeMultiplier float64 `json:"surgeMultiplier"`
	SurgeAmount     int64   `json:"surgeAmount"`
	FinalAmount     int64   `json:"finalAmount"`
}

// BookingResult is returned to callers of BookAppointment.
type BookingResult struct {
	Booking Booking        `json:"booking"`
	Pricing BookingPricing `json:"pricing"`
	Slot    TimeSlot       `json:"slot"`
}

// RescheduleResult reports the before/after state of a reschedule.
type RescheduleResult struct {
	Booking        Booking        `json:"booking"`
	PreviousStart  time.Time      `json:"previousStart"`
	PreviousEnd    time.Time      `json:"previousEnd"`
	PreviousAmount int64          `json:"previousAmount"`
	Slot           TimeSlot       `json:"slot"`
	Pricing        BookingPricing `json:"pricing"`
}

// CancelResult reports the outcome of a cancellation.
type CancelResult struct {
	Booking      Booking `json:"booking"`
	RefundAmount int64   `json:"refundAmount"`
}
