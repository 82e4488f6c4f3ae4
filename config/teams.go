package config

import (
	"log"

	"github.com/spf13/viper"
)

// TeamConfig is the on-disk shape of a service team entry under the "teams"
// key in config.yaml. It is converted into models.Team by the registry.
type TeamConfig struct {
	ID                string   `mapstructure:"id"`
	Name              string   `mapstructure:"name"`
	MaxConcurrentJobs int      `mapstructure:"maxConcurrentJobs"`
	WorkStartMinute   int      `mapstructure:"workStartMinute"` // minutes from midnight
	WorkEndMinute     int      `mapstructure:"workEndMinute"`
	Timezone          string   `mapstructure:"timezone"`
	WorkingDays       []int    `mapstructure:"workingDays"` // 0=Sunday .. 6=Saturday
	Skills            []string `mapstructure:"skills"`
	HourlyRateCents   int64    `mapstructure:"hourlyRateCents"`
}

// LoadTeams reads the team catalog from config. When no teams are configured
// a small default crew is returned so a fresh install can serve bookings.
func LoadTeams() []TeamConfig {
	var teams []TeamConfig
	if err := viper.UnmarshalKey("teams", &teams); err != nil {
		log.Fatalf("Failed to load team catalog: %v", err)
	}
	if len(teams) > 0 {
		return teams
	}
	return defaultTeams()
}

func defaultTeams() []TeamConfig {
	weekdays := []int{1, 2, 3, 4, 5}
	allWeek := []int{0, 1, 2, 3, 4, 5, 6}
	return []TeamConfig{
		{
			ID:                "team-wash-1",
			Name:              "Express Wash Crew",
			MaxConcurrentJobs: 3,
			WorkStartMinute:   8 * 60,
			WorkEndMinute:     18 * 60,
			Timezone:          "Local",
			WorkingDays:       allWeek,
			Skills:            []string{"basic_wash", "full_detail"},
			HourlyRateCents:   7500,
		},
		{
			ID:                "team-detail-1",
			Name:              "Full Detail Crew",
			MaxConcurrentJobs: 2,
			WorkStartMinute:   9 * 60,
			WorkEndMinute:     17 * 60,
			Timezone:          "Local",
			WorkingDays:       weekdays,
			Skills:            []string{"basic_wash", "full_detail", "premium_detail"},
			HourlyRateCents:   9500,
		},
		{
			ID:                "team-repair-1",
			Name:              "Repair & Restoration",
			MaxConcurrentJobs: 1,
			WorkStartMinute:   8 * 60,
			WorkEndMinute:     16 * 60,
			Timezone:          "Local",
			WorkingDays:       weekdays,
			Skills:            []string{"repair", "custom"},
			HourlyRateCents:   12000,
		},
	}
}
