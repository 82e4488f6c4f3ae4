package booking

import (
	"time"

	"detailops/models"
)

// ServiceWindow is the coarse global booking window: slot starts must fall
// inside [StartHour, EndHour) local time. It pre-filters nonsensical inputs
// before any per-team staffing check.
type ServiceWindow struct {
	StartHour int
	EndHour   int
}

// DefaultServiceWindow is 08:00-18:00.
var DefaultServiceWindow = ServiceWindow{StartHour: 8, EndHour: 18}

// SlotValidator normalizes wall-clock instants into TimeSlots. The now
// function exists so tests can pin the clock; production uses time.Now.
type SlotValidator struct {
	Window ServiceWindow
	Now    func() time.Time
}

func NewSlotValidator(window ServiceWindow) *SlotValidator {
	return &SlotValidator{Window: window, Now: time.Now}
}

// ValidateSlot builds a normalized slot from an instant and a duration in
// minutes. It rejects instants not strictly in the future and starts whose
// local hour falls outside the service window.
func (v *SlotValidator) ValidateSlot(start time.Time, durationMinutes int) (models.TimeSlot, error) {
	if durationMinutes <= 0 {
		return models.TimeSlot{}, NewInvalidInput("duration must be positive, got %d", durationMinutes)
	}
	if !start.After(v.Now()) {
		return models.TimeSlot{}, NewInvalidInput("requested time %s is in the past", start.Format(time.RFC3339))
	}
	hour := start.Hour()
	if hour < v.Window.StartHour || hour >= v.Window.EndHour {
		return models.TimeSlot{}, NewInvalidInput(
			"requested time %02d:%02d is outside service hours %02d:00-%02d:00",
			hour, start.Minute(), v.Window.StartHour, v.Window.EndHour)
	}
	return models.TimeSlot{
		Start:    start,
		End:      start.Add(time.Duration(durationMinutes) * time.Minute),
		Duration: durationMinutes,
	}, nil
}

// TeamCanServe reports whether the slot falls on one of the team's working
// days and entirely inside its staffed hours.
func TeamCanServe(team models.Team, slot models.TimeSlot) bool {
	if !team.WorksOn(slot.Start.Weekday()) {
		return false
	}
	startMin := slot.Start.Hour()*60 + slot.Start.Minute()
	endMin := startMin + slot.Duration
	return startMin >= team.WorkingHours.StartMinute && endMin <= team.WorkingHours.EndMinute
}
