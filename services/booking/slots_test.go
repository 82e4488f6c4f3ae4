package booking

import (
	"testing"
	"time"

	"detailops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Monday, 2026-03-02 08:00 UTC. Tests pin the validator clock
// here so slot arithmetic stays stable.
var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func testValidator() *SlotValidator {
	v := NewSlotValidator(DefaultServiceWindow)
	v.Now = func() time.Time { return fixedNow }
	return v
}

func TestValidateSlot(t *testing.T) {
	v := testValidator()

	slot, err := v.ValidateSlot(fixedNow.Add(26*time.Hour), 120)
	require.NoError(t, err)
	assert.Equal(t, slot.Start.Add(2*time.Hour), slot.End)
	assert.Equal(t, 120, slot.Duration)
}

func TestValidateSlotRejectsPast(t *testing.T) {
	v := testValidator()

	_, err := v.ValidateSlot(fixedNow.Add(-time.Hour), 120)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidInput, CodeOf(err))

	// Exactly "now" is also not bookable.
	_, err = v.ValidateSlot(fixedNow, 120)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidInput, CodeOf(err))
}

func TestValidateSlotRejectsOutsideServiceWindow(t *testing.T) {
	v := testValidator()
	tomorrow := fixedNow.AddDate(0, 0, 1)

	for _, hour := range []int{0, 6, 7, 18, 22} {
		start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, 0, 0, 0, time.UTC)
		_, err := v.ValidateSlot(start, 60)
		require.Error(t, err, "hour %d", hour)
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
	}

	// Boundary starts inside the window are fine.
	for _, hour := range []int{8, 12, 17} {
		start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, 0, 0, 0, time.UTC)
		_, err := v.ValidateSlot(start, 60)
		require.NoError(t, err, "hour %d", hour)
	}
}

func TestValidateSlotRejectsNonPositiveDuration(t *testing.T) {
	v := testValidator()

	for _, d := range []int{0, -30} {
		_, err := v.ValidateSlot(fixedNow.Add(24*time.Hour), d)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
	}
}

func TestTeamCanServe(t *testing.T) {
	team := models.Team{
		ID: "crew",
		WorkingHours: models.WorkingHours{
			StartMinute: 9 * 60,
			EndMinute:   17 * 60,
		},
		WorkingDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, 6)

	at := func(day time.Time, hour, minute, duration int) models.TimeSlot {
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
		return models.TimeSlot{Start: start, End: start.Add(time.Duration(duration) * time.Minute), Duration: duration}
	}

	assert.True(t, TeamCanServe(team, at(monday, 9, 0, 120)))
	assert.True(t, TeamCanServe(team, at(monday, 15, 0, 120))) // ends exactly at 17:00
	assert.False(t, TeamCanServe(team, at(monday, 8, 30, 60)))  // before shift
	assert.False(t, TeamCanServe(team, at(monday, 16, 0, 120))) // runs past shift end
	assert.False(t, TeamCanServe(team, at(sunday, 10, 0, 60)))  // off day
}
