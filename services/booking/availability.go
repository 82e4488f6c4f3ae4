package booking

import (
	"context"
	"time"

	bookingRepo "detailops/database/repository/booking"
	"detailops/models"
)

// DefaultSlotMinutes is the candidate slot size used for calendar
// enumeration and best-slot search.
const DefaultSlotMinutes = 120

// DefaultMaxSurge caps the surge multiplier unless the tenant overrides it.
const DefaultMaxSurge = 2.0

// surgeThreshold is the occupancy rate at which surge pricing kicks in.
const surgeThreshold = 0.8

// SurgeMultiplier maps an occupancy rate onto the discrete surge step
// function, capped at max (0 means no cap). The breakpoints are part of the
// pricing contract; callers round-trip the result into charge amounts.
func SurgeMultiplier(occupancyRate, max float64) float64 {
	var m float64
	switch {
	case occupancyRate < 0.8:
		m = 1.0
	case occupancyRate < 0.9:
		m = 1.3
	case occupancyRate < 0.95:
		m = 1.6
	default:
		m = 2.0
	}
	if max > 0 && m > max {
		m = max
	}
	return m
}

// AvailabilityChecker runs admission checks against the live booking set.
// Results are never cached: occupancy is a function of current bookings.
type AvailabilityChecker struct {
	Registry  *TeamRegistry
	Bookings  bookingRepo.BookingRepository
	Validator *SlotValidator
	MaxSurge  float64
}

func (ac *AvailabilityChecker) maxSurge() float64 {
	if ac.MaxSurge > 0 {
		return ac.MaxSurge
	}
	return DefaultMaxSurge
}

// Check counts active bookings overlapping the slot against the team's
// capacity and derives occupancy and surge.
func (ac *AvailabilityChecker) Check(ctx context.Context, tenantID string, slot models.TimeSlot, teamID string) (models.AvailabilityCheck, error) {
	return ac.CheckExcluding(ctx, tenantID, slot, teamID, "")
}

// CheckExcluding is Check with one booking left out of the overlap count.
// Rescheduling uses it so a booking does not conflict with itself.
func (ac *AvailabilityChecker) CheckExcluding(ctx context.Context, tenantID string, slot models.TimeSlot, teamID, excludeBookingID string) (models.AvailabilityCheck, error) {
	team, err := ac.Registry.Get(teamID)
	if err != nil {
		return models.AvailabilityCheck{}, err
	}

	slot.TeamID = team.ID
	slot.Capacity = team.MaxConcurrentJobs

	if !TeamCanServe(team, slot) {
		return models.AvailabilityCheck{
			IsAvailable:     false,
			MaxCapacity:     team.MaxConcurrentJobs,
			SurgeMultiplier: 1.0,
		}, nil
	}

	overlapping, err := ac.Bookings.FindOverlapping(ctx, tenantID, team.ID, slot.Start, slot.End)
	if err != nil {
		return models.AvailabilityCheck{}, err
	}

	conflicting := make([]string, 0, len(overlapping))
	for _, b := range overlapping {
		if b.ID == excludeBookingID {
			continue
		}
		conflicting = append(conflicting, b.ID)
	}

	occupancy := len(conflicting)
	rate := float64(occupancy) / float64(team.MaxConcurrentJobs)
	return models.AvailabilityCheck{
		IsAvailable:      occupancy < team.MaxConcurrentJobs,
		CurrentOccupancy: occupancy,
		MaxCapacity:      team.MaxConcurrentJobs,
		OccupancyRate:    rate,
		ConflictingIDs:   conflicting,
		SurgeRequired:    rate >= surgeThreshold,
		SurgeMultiplier:  SurgeMultiplier(rate, ac.maxSurge()),
	}, nil
}

// TeamAvailability enumerates fixed-size candidate slots across the range,
// keeping the ones the team could serve, and checks each against the live
// booking set. Drives calendar displays; booking creation re-checks live.
func (ac *AvailabilityChecker) TeamAvailability(ctx context.Context, tenantID, teamID string, from, to time.Time) ([]models.SlotAvailability, error) {
	team, err := ac.Registry.Get(teamID)
	if err != nil {
		return nil, err
	}

	var results []models.SlotAvailability
	step := time.Duration(DefaultSlotMinutes) * time.Minute
	for start := from; !start.Add(step).After(to); start = start.Add(step) {
		slot, err := ac.Validator.ValidateSlot(start, DefaultSlotMinutes)
		if err != nil {
			continue
		}
		if !TeamCanServe(team, slot) {
			continue
		}
		check, err := ac.Check(ctx, tenantID, slot, team.ID)
		if err != nil {
			return nil, err
		}
		slot.TeamID = team.ID
		slot.Capacity = team.MaxConcurrentJobs
		results = append(results, models.SlotAvailability{Slot: slot, Check: check})
	}
	return results, nil
}

// BestSlot is the result of a best-slot search.
type BestSlot struct {
	Slot   models.TimeSlot          `json:"slot"`
	TeamID string                   `json:"teamId"`
	Check  models.AvailabilityCheck `json:"check"`
}

// FindBestSlot searches a 7-day horizon starting one hour from now (or the
// preferred instant, when later) for the capable team slot with the lowest
// occupancy rate, tie-broken by earliest start. The preferred team, when
// capable and available, wins outright. Returns nil when no team has the
// skill or nothing is open.
func (ac *AvailabilityChecker) FindBestSlot(ctx context.Context, tenantID string, svc models.ServiceType, preferred *time.Time, preferredTeamID string) (*BestSlot, error) {
	teams := ac.Registry.TeamsCapableOf(svc)
	if len(teams) == 0 {
		return nil, nil
	}

	searchStart := ac.Validator.Now().Add(time.Hour).Truncate(time.Hour).Add(time.Hour)
	if preferred != nil && preferred.After(searchStart) {
		searchStart = *preferred
	}
	searchEnd := searchStart.AddDate(0, 0, 7)

	// Put the caller's requested team in front when it has the skill.
	if preferredTeamID != "" {
		ordered := make([]models.Team, 0, len(teams))
		for _, t := range teams {
			if t.ID == preferredTeamID {
				ordered = append([]models.Team{t}, ordered...)
			} else {
				ordered = append(ordered, t)
			}
		}
		teams = ordered
	}

	var best *BestSlot
	for i, team := range teams {
		slots, err := ac.TeamAvailability(ctx, tenantID, team.ID, searchStart, searchEnd)
		if err != nil {
			return nil, err
		}
		for _, sa := range slots {
			if !sa.Check.IsAvailable {
				continue
			}
			if best == nil ||
				sa.Check.OccupancyRate < best.Check.OccupancyRate ||
				(sa.Check.OccupancyRate == best.Check.OccupancyRate && sa.Slot.Start.Before(best.Slot.Start)) {
				best = &BestSlot{Slot: sa.Slot, TeamID: team.ID, Check: sa.Check}
			}
		}
		// Preferred team wins outright when it has any open slot.
		if i == 0 && preferredTeamID == team.ID && best != nil {
			return best, nil
		}
	}
	return best, nil
}
