package tasks

import (
	"testing"
	"time"

	"detailops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderTriggersAllInFuture(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	start := now.Add(48 * time.Hour)

	jobs := ReminderTriggers(start, now)
	require.Len(t, jobs, 3)
	assert.Equal(t, models.Reminder24Hour, jobs[0].Kind)
	assert.Equal(t, start.Add(-24*time.Hour), jobs[0].ScheduledFor)
	assert.Equal(t, models.Reminder2Hour, jobs[1].Kind)
	assert.Equal(t, start.Add(-2*time.Hour), jobs[1].ScheduledFor)
	assert.Equal(t, models.Reminder30Minute, jobs[2].Kind)
	assert.Equal(t, start.Add(-30*time.Minute), jobs[2].ScheduledFor)
}

func TestReminderTriggersDropPastInstants(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	// Booking 3 hours out: the 24-hour trigger is already in the past.
	jobs := ReminderTriggers(now.Add(3*time.Hour), now)
	require.Len(t, jobs, 2)
	assert.Equal(t, models.Reminder2Hour, jobs[0].Kind)
	assert.Equal(t, models.Reminder30Minute, jobs[1].Kind)

	// Booking 1 hour out: only the 30-minute trigger survives.
	jobs = ReminderTriggers(now.Add(time.Hour), now)
	require.Len(t, jobs, 1)
	assert.Equal(t, models.Reminder30Minute, jobs[0].Kind)

	// Booking 20 minutes out: nothing left to schedule.
	assert.Empty(t, ReminderTriggers(now.Add(20*time.Minute), now))
}

func TestReminderTriggersBoundary(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	// A trigger landing exactly on "now" is treated as past.
	jobs := ReminderTriggers(now.Add(30*time.Minute), now)
	assert.Empty(t, jobs)
}
