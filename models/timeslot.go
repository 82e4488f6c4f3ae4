package models

import "time"

// TimeSlot is a normalized, validated booking window. Immutable once built
// by the slot validator: End is always Start plus Duration.
type TimeSlot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration"` // minutes
	TeamID   string    `json:"teamId,omitempty"`
	Capacity int       `json:"capacity,omitempty"`
}

// AvailabilityCheck is the derived result of one admission check against the
// live booking set. It is recomputed on every call and never cached.
type AvailabilityCheck struct {
	IsAvailable      bool     `json:"isAvailable"`
	CurrentOccupancy int      `json:"currentOccupancy"`
	MaxCapacity      int      `json:"maxCapacity"`
	OccupancyRate    float64  `json:"occupancyRate"`
	ConflictingIDs   []string `json:"conflictingIds,omitempty"`
	SurgeRequired    bool     `json:"surgeRequired"`
	SurgeMultiplier  float64  `json:"surgeMultiplier"`
}

// SlotAvailability pairs a candidate slot with its admission check result,
// used for calendar displays and best-slot search.
type SlotAvailability struct {
	Slot  TimeSlot          `json:"slot"`
	Check AvailabilityCheck `json:"check"`
}
