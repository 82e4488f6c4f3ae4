package notification

import (
	"context"

	"detailops/models"
)

// NotificationService delivers customer-facing reminders. The scheduling
// engine only enqueues deferred jobs; the worker hands surviving jobs to
// this interface, so delivery mechanics stay outside the core.
type NotificationService interface {
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}
