package booking

import (
	"context"
	"testing"
	"time"

	"detailops/config"
	"detailops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurgeMultiplierBreakpoints(t *testing.T) {
	cases := []struct {
		rate float64
		want float64
	}{
		{0.0, 1.0},
		{0.5, 1.0},
		{0.79, 1.0},
		{0.8, 1.3},
		{0.85, 1.3},
		{0.89, 1.3},
		{0.9, 1.6},
		{0.94, 1.6},
		{0.95, 2.0},
		{1.0, 2.0},
		{1.5, 2.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SurgeMultiplier(tc.rate, 2.0), "rate %v", tc.rate)
	}
}

func TestSurgeMultiplierRespectsCap(t *testing.T) {
	assert.Equal(t, 1.5, SurgeMultiplier(1.0, 1.5))
	assert.Equal(t, 1.3, SurgeMultiplier(0.85, 1.5))
	assert.Equal(t, 2.0, SurgeMultiplier(1.0, 0)) // zero cap means uncapped
}

func testRegistry() *TeamRegistry {
	allWeek := []int{0, 1, 2, 3, 4, 5, 6}
	return NewTeamRegistry([]config.TeamConfig{
		{
			ID: "wash", Name: "Wash Crew", MaxConcurrentJobs: 2,
			WorkStartMinute: 8 * 60, WorkEndMinute: 18 * 60,
			WorkingDays: allWeek,
			Skills:      []string{"basic_wash", "full_detail"},
		},
		{
			ID: "detail", Name: "Detail Crew", MaxConcurrentJobs: 5,
			WorkStartMinute: 8 * 60, WorkEndMinute: 18 * 60,
			WorkingDays: allWeek,
			Skills:      []string{"full_detail", "premium_detail"},
		},
	})
}

func testChecker(repo *fakeBookingRepo) *AvailabilityChecker {
	return &AvailabilityChecker{
		Registry:  testRegistry(),
		Bookings:  repo,
		Validator: testValidator(),
	}
}

// slotAt builds a validated slot for tomorrow at the given hour.
func slotAt(t *testing.T, hour, durationMinutes int) models.TimeSlot {
	t.Helper()
	day := fixedNow.AddDate(0, 0, 1)
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	slot, err := testValidator().ValidateSlot(start, durationMinutes)
	require.NoError(t, err)
	return slot
}

func activeBooking(id, teamID string, slot models.TimeSlot) models.Booking {
	return models.Booking{
		ID:             id,
		TenantID:       "tenant-1",
		Status:         models.BookingScheduled,
		AssignedTeamID: teamID,
		ScheduledStart: slot.Start,
		ScheduledEnd:   slot.End,
	}
}

func TestCheckOpenSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	checker := testChecker(repo)

	check, err := checker.Check(context.Background(), "tenant-1", slotAt(t, 10, 120), "wash")
	require.NoError(t, err)
	assert.True(t, check.IsAvailable)
	assert.Equal(t, 0, check.CurrentOccupancy)
	assert.Equal(t, 2, check.MaxCapacity)
	assert.False(t, check.SurgeRequired)
	assert.Equal(t, 1.0, check.SurgeMultiplier)
}

func TestCheckRejectsFullCapacity(t *testing.T) {
	repo := newFakeBookingRepo()
	slot := slotAt(t, 10, 120)
	repo.add(activeBooking("b1", "wash", slot))
	repo.add(activeBooking("b2", "wash", slot))
	checker := testChecker(repo)

	check, err := checker.Check(context.Background(), "tenant-1", slot, "wash")
	require.NoError(t, err)
	assert.False(t, check.IsAvailable)
	assert.Equal(t, 2, check.CurrentOccupancy)
	assert.ElementsMatch(t, []string{"b1", "b2"}, check.ConflictingIDs)
}

func TestCheckUsesHalfOpenIntervals(t *testing.T) {
	repo := newFakeBookingRepo()
	morning := slotAt(t, 8, 120) // 08:00-10:00
	repo.add(activeBooking("b1", "wash", morning))
	repo.add(activeBooking("b2", "wash", morning))
	checker := testChecker(repo)

	// 10:00-12:00 starts exactly where the full block ends: no overlap.
	check, err := checker.Check(context.Background(), "tenant-1", slotAt(t, 10, 120), "wash")
	require.NoError(t, err)
	assert.True(t, check.IsAvailable)
	assert.Equal(t, 0, check.CurrentOccupancy)

	// 09:00-11:00 overlaps the block.
	check, err = checker.Check(context.Background(), "tenant-1", slotAt(t, 9, 120), "wash")
	require.NoError(t, err)
	assert.False(t, check.IsAvailable)
}

func TestCheckIgnoresCancelledAndNoShow(t *testing.T) {
	repo := newFakeBookingRepo()
	slot := slotAt(t, 10, 120)
	cancelled := activeBooking("b1", "wash", slot)
	cancelled.Status = models.BookingCancelled
	noShow := activeBooking("b2", "wash", slot)
	noShow.Status = models.BookingNoShow
	repo.add(cancelled)
	repo.add(noShow)
	checker := testChecker(repo)

	check, err := checker.Check(context.Background(), "tenant-1", slot, "wash")
	require.NoError(t, err)
	assert.True(t, check.IsAvailable)
	assert.Equal(t, 0, check.CurrentOccupancy)
}

func TestCheckSurgeAtHighOccupancy(t *testing.T) {
	repo := newFakeBookingRepo()
	slot := slotAt(t, 10, 120)
	// 4 of 5 detail-crew slots taken: occupancy 0.8 triggers the 1.3 step.
	for _, id := range []string{"b1", "b2", "b3", "b4"} {
		repo.add(activeBooking(id, "detail", slot))
	}
	checker := testChecker(repo)

	check, err := checker.Check(context.Background(), "tenant-1", slot, "detail")
	require.NoError(t, err)
	assert.True(t, check.IsAvailable)
	assert.Equal(t, 0.8, check.OccupancyRate)
	assert.True(t, check.SurgeRequired)
	assert.Equal(t, 1.3, check.SurgeMultiplier)
}

func TestCheckUnknownTeam(t *testing.T) {
	checker := testChecker(newFakeBookingRepo())

	_, err := checker.Check(context.Background(), "tenant-1", slotAt(t, 10, 120), "ghost")
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestCheckExcludingSkipsOwnBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	slot := slotAt(t, 10, 120)
	repo.add(activeBooking("mine", "wash", slot))
	repo.add(activeBooking("other", "wash", slot))
	checker := testChecker(repo)

	check, err := checker.CheckExcluding(context.Background(), "tenant-1", slot, "wash", "mine")
	require.NoError(t, err)
	assert.True(t, check.IsAvailable)
	assert.Equal(t, 1, check.CurrentOccupancy)
	assert.Equal(t, []string{"other"}, check.ConflictingIDs)
}

func TestTeamAvailabilityEnumeratesServableSlots(t *testing.T) {
	repo := newFakeBookingRepo()
	checker := testChecker(repo)

	day := fixedNow.AddDate(0, 0, 1)
	from := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, time.UTC)
	to := from.Add(10 * time.Hour) // 08:00-18:00

	slots, err := checker.TeamAvailability(context.Background(), "tenant-1", "wash", from, to)
	require.NoError(t, err)
	// 120-minute steps: 08, 10, 12, 14, 16.
	require.Len(t, slots, 5)
	for _, sa := range slots {
		assert.True(t, sa.Check.IsAvailable)
		assert.Equal(t, "wash", sa.Slot.TeamID)
	}
}

func TestFindBestSlotPrefersLowestOccupancy(t *testing.T) {
	repo := newFakeBookingRepo()
	// Keep the wash crew partially booked all week so the empty detail crew
	// should win for full_detail work.
	for day := 0; day <= 7; day++ {
		d := fixedNow.AddDate(0, 0, day)
		for hour := 8; hour < 18; hour += 2 {
			start := time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
			repo.add(activeBooking("wash-"+start.Format("02-15"), "wash", models.TimeSlot{
				Start: start, End: start.Add(2 * time.Hour),
			}))
		}
	}
	checker := testChecker(repo)

	best, err := checker.FindBestSlot(context.Background(), "tenant-1", models.ServiceFullDetail, nil, "")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "detail", best.TeamID)
	assert.Equal(t, 0, best.Check.CurrentOccupancy)
}

func TestFindBestSlotHonorsPreferredTeam(t *testing.T) {
	repo := newFakeBookingRepo()
	checker := testChecker(repo)

	best, err := checker.FindBestSlot(context.Background(), "tenant-1", models.ServiceFullDetail, nil, "wash")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "wash", best.TeamID)
}

func TestFindBestSlotNoCapableTeam(t *testing.T) {
	checker := testChecker(newFakeBookingRepo())

	// "none found" is a nil result, not an error, same as a fully booked
	// horizon.
	best, err := checker.FindBestSlot(context.Background(), "tenant-1", models.ServiceRepair, nil, "")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestRegistryTeamsCapableOf(t *testing.T) {
	reg := testRegistry()

	capable := reg.TeamsCapableOf(models.ServiceFullDetail)
	require.Len(t, capable, 2)
	assert.Equal(t, "wash", capable[0].ID)

	capable = reg.TeamsCapableOf(models.ServicePremiumDetail)
	require.Len(t, capable, 1)
	assert.Equal(t, "detail", capable[0].ID)

	assert.Empty(t, reg.TeamsCapableOf(models.ServiceRepair))

	_, err := reg.Get("nope")
	assert.Equal(t, CodeNotFound, CodeOf(err))
}
