package models

import "time"

// ReminderKind identifies how far ahead of the booking start a reminder
// fires.
type ReminderKind string

const (
	Reminder24Hour   ReminderKind = "24-hour"
	Reminder2Hour    ReminderKind = "2-hour"
	Reminder30Minute ReminderKind = "30-minute"
)

// ReminderPayload is the deferred-job payload for a booking reminder.
type ReminderPayload struct {
	BookingID     string       `json:"bookingId"`
	TenantID      string       `json:"tenantId"`
	Kind          ReminderKind `json:"kind"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	FireAt        time.Time    `json:"fireAt"`
	Title         string       `json:"title"`
	Body          string       `json:"body"`
}

// NotificationJob is the handle of one enqueued reminder.
type NotificationJob struct {
	ID           string       `json:"id"`
	Kind         ReminderKind `json:"kind"`
	ScheduledFor time.Time    `json:"scheduledFor"`
}
