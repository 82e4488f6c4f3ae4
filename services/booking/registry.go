package booking

import (
	"time"

	"detailops/config"
	"detailops/models"
)

// TeamRegistry is the read-only catalog of service teams. It is built once
// from configuration and shared without synchronization.
type TeamRegistry struct {
	teams map[string]models.Team
	order []string
}

// NewTeamRegistry converts the configured team entries into the runtime
// catalog, preserving configuration order for deterministic iteration.
func NewTeamRegistry(entries []config.TeamConfig) *TeamRegistry {
	reg := &TeamRegistry{teams: make(map[string]models.Team, len(entries))}
	for _, e := range entries {
		days := make([]time.Weekday, 0, len(e.WorkingDays))
		for _, d := range e.WorkingDays {
			days = append(days, time.Weekday(d))
		}
		skills := make([]models.ServiceType, 0, len(e.Skills))
		for _, s := range e.Skills {
			skills = append(skills, models.ServiceType(s))
		}
		team := models.Team{
			ID:                e.ID,
			Name:              e.Name,
			MaxConcurrentJobs: e.MaxConcurrentJobs,
			WorkingHours: models.WorkingHours{
				StartMinute: e.WorkStartMinute,
				EndMinute:   e.WorkEndMinute,
				Timezone:    e.Timezone,
			},
			WorkingDays: days,
			Skills:      skills,
			HourlyRate:  e.HourlyRateCents,
		}
		reg.teams[team.ID] = team
		reg.order = append(reg.order, team.ID)
	}
	return reg
}

// Get returns the team for the given id. Unknown ids are a terminal
// validation error, never retried.
func (r *TeamRegistry) Get(teamID string) (models.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return models.Team{}, NewNotFound("team %s not found", teamID)
	}
	return team, nil
}

// TeamsCapableOf returns every team whose skill set covers the service type,
// in configuration order.
func (r *TeamRegistry) TeamsCapableOf(svc models.ServiceType) []models.Team {
	var capable []models.Team
	for _, id := range r.order {
		if team := r.teams[id]; team.HasSkill(svc) {
			capable = append(capable, team)
		}
	}
	return capable
}

// All returns the full catalog in configuration order.
func (r *TeamRegistry) All() []models.Team {
	teams := make([]models.Team, 0, len(r.order))
	for _, id := range r.order {
		teams = append(teams, r.teams[id])
	}
	return teams
}
