package models

import "time"

// ServiceType is the closed set of services a shop offers.
type ServiceType string

const (
	ServiceBasicWash     ServiceType = "basic_wash"
	ServiceFullDetail    ServiceType = "full_detail"
	ServicePremiumDetail ServiceType = "premium_detail"
	ServiceRepair        ServiceType = "repair"
	ServiceCustom        ServiceType = "custom"
)

// WorkingHours describes a team's daily staffed window as minutes from
// midnight in the team's timezone (e.g., 480 for 8:00 AM).
type WorkingHours struct {
	StartMinute int    `bson:"startMinute" json:"startMinute"`
	EndMinute   int    `bson:"endMinute" json:"endMinute"`
	Timezone    string `bson:"timezone" json:"timezone"`
}

// Team is a configured service crew. Teams are loaded from configuration at
// startup and never mutated by the engine.
type Team struct {
	ID                string         `bson:"id" json:"id"`
	Name              string         `bson:"name" json:"name"`
	MaxConcurrentJobs int            `bson:"maxConcurrentJobs" json:"maxConcurrentJobs"` // capacity for overlapping bookings
	WorkingHours      WorkingHours   `bson:"workingHours" json:"workingHours"`
	WorkingDays       []time.Weekday `bson:"workingDays" json:"workingDays"`
	Skills            []ServiceType  `bson:"skills" json:"skills"`
	HourlyRate        int64          `bson:"hourlyRate" json:"hourlyRate"` // cents per hour
}

// HasSkill reports whether the team can perform the given service type.
func (t Team) HasSkill(svc ServiceType) bool {
	for _, s := range t.Skills {
		if s == svc {
			return true
		}
	}
	return false
}

// WorksOn reports whether the team is staffed on the given weekday.
func (t Team) WorksOn(day time.Weekday) bool {
	for _, d := range t.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}
