package cron

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "detailops/database/repository/booking"
	"detailops/services/tasks"
	"detailops/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeCleanupStale = "maintenance:cleanup-stale"

// staleAfter: cancelled or never-confirmed bookings older than this are
// purged by the nightly job.
const staleAfter = 30 * 24 * time.Hour

// InitCleanupScheduler registers the nightly stale-record cleanup entry.
func InitCleanupScheduler() {
	logger := utils.GetLogger()

	scheduler := asynq.NewScheduler(tasks.RedisOpt(), &asynq.SchedulerOpts{})
	payload, _ := json.Marshal(map[string]string{})
	if _, err := scheduler.Register("0 3 * * *", asynq.NewTask(TypeCleanupStale, payload)); err != nil {
		logger.Fatal("failed to register cleanup schedule", zap.Error(err))
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("cleanup scheduler stopped", zap.Error(err))
		}
	}()
}

// HandleCleanupTask purges stale scheduled/cancelled booking records.
func HandleCleanupTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		logger := utils.GetLogger()
		cutoff := time.Now().Add(-staleAfter)
		deleted, err := bookings.DeleteStale(ctx, cutoff)
		if err != nil {
			logger.Error("stale booking cleanup failed", zap.Error(err))
			return err
		}
		logger.Info("stale booking cleanup complete", zap.Int64("deleted", deleted))
		return nil
	}
}
