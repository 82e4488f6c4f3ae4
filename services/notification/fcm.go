package notification

import (
	"context"
	"fmt"

	"detailops/models"
	"detailops/utils"

	"firebase.google.com/go/v4/messaging"
)

// FCMNotificationService pushes reminders to the tenant's shop app via a
// per-tenant FCM topic; the app relays to the customer by SMS or call.
type FCMNotificationService struct{}

func NewFCMNotificationService() *FCMNotificationService {
	return &FCMNotificationService{}
}

func (s *FCMNotificationService) SendBookingReminder(ctx context.Context, p models.ReminderPayload) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Topic: "tenant-" + p.TenantID + "-reminders",
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: map[string]string{
			"bookingId":     p.BookingID,
			"kind":          string(p.Kind),
			"customerName":  p.CustomerName,
			"customerPhone": p.CustomerPhone,
			"fireAt":        p.FireAt.Format("2006-01-02T15:04:05Z07:00"),
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM reminder for booking %s: %w", p.BookingID, err)
	}
	return nil
}
