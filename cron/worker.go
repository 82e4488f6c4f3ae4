package cron

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "detailops/database/repository/booking"
	"detailops/models"
	"detailops/services/notification"
	"detailops/services/tasks"
	"detailops/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		tasks.RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.ReminderQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, bookings))
	mux.HandleFunc(TypeCleanupStale, HandleCleanupTask(bookings))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask sends one booking reminder. Deferred jobs are not
// transactionally linked to booking mutations, so the handler re-checks the
// booking's live status and silently skips cancelled or no-show bookings.
func handleReminderTask(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder handler: invalid payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(ctx, p.TenantID, p.BookingID)
		if err != nil {
			return err
		}
		if booking == nil || booking.Status == models.BookingCancelled || booking.Status == models.BookingNoShow {
			logger.Info("reminder skipped",
				zap.String("bookingId", p.BookingID),
				zap.String("kind", string(p.Kind)))
			return nil
		}

		if err := notifSvc.SendBookingReminder(ctx, p); err != nil {
			logger.Error("failed to send booking reminder",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
