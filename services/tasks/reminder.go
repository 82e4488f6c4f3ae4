package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"detailops/config"
	"detailops/models"
	"detailops/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// ReminderQueue is the asynq queue reminders are enqueued on.
const ReminderQueue = "default"

// reminderOffsets defines how far before the booking start each reminder
// fires, in trigger order.
var reminderOffsets = []struct {
	Kind   models.ReminderKind
	Before time.Duration
}{
	{models.Reminder24Hour, 24 * time.Hour},
	{models.Reminder2Hour, 2 * time.Hour},
	{models.Reminder30Minute, 30 * time.Minute},
}

// NewReminderTask builds one deferred reminder task with a caller-chosen id
// so it can later be cancelled by handle.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time, taskID string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(taskID),
		asynq.Queue(ReminderQueue),
	}
	return task, opts, nil
}

// RedisOpt returns the asynq Redis connection settings for the reminder
// queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues and cancels deferred booking reminders.
// The now function exists so tests can pin the clock.
type AsynqReminderScheduler struct {
	Client    *asynq.Client
	Inspector *asynq.Inspector
	Now       func() time.Time
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	opt := RedisOpt()
	return &AsynqReminderScheduler{
		Client:    asynq.NewClient(opt),
		Inspector: asynq.NewInspector(opt),
		Now:       time.Now,
	}
}

// ReminderTriggers computes the surviving trigger instants for a start time:
// any trigger already in the past relative to now is discarded.
func ReminderTriggers(start, now time.Time) []models.NotificationJob {
	var jobs []models.NotificationJob
	for _, off := range reminderOffsets {
		fireAt := start.Add(-off.Before)
		if !fireAt.After(now) {
			continue
		}
		jobs = append(jobs, models.NotificationJob{
			Kind:         off.Kind,
			ScheduledFor: fireAt,
		})
	}
	return jobs
}

// Schedule enqueues one deferred reminder per surviving trigger instant and
// returns the created job handles.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, booking models.Booking) ([]models.NotificationJob, error) {
	logger := utils.GetLogger()
	now := s.Now()

	jobs := ReminderTriggers(booking.ScheduledStart, now)
	scheduled := make([]models.NotificationJob, 0, len(jobs))
	for _, job := range jobs {
		taskID := fmt.Sprintf("reminder:%s:%s:%d", booking.ID, job.Kind, job.ScheduledFor.Unix())
		payload := models.ReminderPayload{
			BookingID:     booking.ID,
			TenantID:      booking.TenantID,
			Kind:          job.Kind,
			CustomerName:  booking.Customer.Name,
			CustomerPhone: booking.Customer.Phone,
			FireAt:        job.ScheduledFor,
			Title:         "Upcoming appointment",
			Body: fmt.Sprintf("Reminder: your %s appointment %s starts at %s.",
				booking.ServiceType, booking.BookingNumber,
				booking.ScheduledStart.Format("Mon Jan 2 15:04")),
		}
		task, opts, err := NewReminderTask(payload, job.ScheduledFor, taskID)
		if err != nil {
			return scheduled, fmt.Errorf("failed to build reminder task: %w", err)
		}
		if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
			return scheduled, fmt.Errorf("failed to enqueue %s reminder: %w", job.Kind, err)
		}
		job.ID = taskID
		scheduled = append(scheduled, job)
		logger.Debug("reminder enqueued",
			zap.String("bookingId", booking.ID),
			zap.String("kind", string(job.Kind)),
			zap.Time("fireAt", job.ScheduledFor))
	}
	return scheduled, nil
}

// Cancel deletes each job handle, tolerating individual failures. A job that
// slips through is absorbed by the handler's live-status recheck.
func (s *AsynqReminderScheduler) Cancel(ctx context.Context, jobIDs []string) {
	logger := utils.GetLogger()
	for _, id := range jobIDs {
		if err := s.Inspector.DeleteTask(ReminderQueue, id); err != nil {
			logger.Warn("failed to cancel reminder task",
				zap.String("taskId", id), zap.Error(err))
		}
	}
}
