package booking

import (
	"testing"

	"detailops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	allowed := []struct {
		from, to models.BookingStatus
	}{
		{models.BookingScheduled, models.BookingConfirmed},
		{models.BookingScheduled, models.BookingCancelled},
		{models.BookingScheduled, models.BookingNoShow},
		{models.BookingConfirmed, models.BookingInProgress},
		{models.BookingConfirmed, models.BookingCancelled},
		{models.BookingConfirmed, models.BookingNoShow},
		{models.BookingInProgress, models.BookingCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to models.BookingStatus
	}{
		{models.BookingScheduled, models.BookingInProgress},
		{models.BookingScheduled, models.BookingCompleted},
		{models.BookingInProgress, models.BookingCancelled},
		{models.BookingInProgress, models.BookingNoShow},
		{models.BookingCompleted, models.BookingScheduled},
		{models.BookingCompleted, models.BookingCancelled},
		{models.BookingCancelled, models.BookingScheduled},
		{models.BookingCancelled, models.BookingConfirmed},
		{models.BookingNoShow, models.BookingScheduled},
	}
	for _, tc := range forbidden {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []models.BookingStatus{
		models.BookingScheduled, models.BookingConfirmed, models.BookingInProgress,
		models.BookingCompleted, models.BookingCancelled, models.BookingNoShow,
	}
	for _, terminal := range []models.BookingStatus{models.BookingCompleted, models.BookingCancelled} {
		for _, to := range all {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}

func TestTransitionMutatesOnlyWhenLegal(t *testing.T) {
	b := &models.Booking{ID: "b1", Status: models.BookingScheduled}

	require.NoError(t, Transition(b, models.BookingConfirmed))
	assert.Equal(t, models.BookingConfirmed, b.Status)

	err := Transition(b, models.BookingCompleted)
	require.Error(t, err)
	assert.Equal(t, CodeConflict, CodeOf(err))
	assert.Equal(t, models.BookingConfirmed, b.Status)
}
