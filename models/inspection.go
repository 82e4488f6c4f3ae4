package models

import "time"

// InspectionStatus tracks an inspection through estimation and booking.
type InspectionStatus string

const (
	InspectionPending   InspectionStatus = "pending"
	InspectionEstimated InspectionStatus = "estimated"
	InspectionBooked    InspectionStatus = "booked"
)

// DamageType is the closed set of damage categories the detection pipeline
// reports.
type DamageType string

const (
	DamageScratch DamageType = "scratch"
	DamageDent    DamageType = "dent"
	DamagePaint   DamageType = "paint_damage"
	DamageRust    DamageType = "rust"
	DamageCrack   DamageType = "crack"
	DamageOther   DamageType = "other"
)

// DamageSeverity scales repair time: minor x1, moderate x2, major x4,
// severe x8.
type DamageSeverity string

const (
	SeverityMinor    DamageSeverity = "minor"
	SeverityModerate DamageSeverity = "moderate"
	SeverityMajor    DamageSeverity = "major"
	SeveritySevere   DamageSeverity = "severe"
)

// Damage is one detected damage record supplied by the inspection pipeline.
// EstimatedRepairHours, when positive, overrides the (type, severity) lookup.
type Damage struct {
	ID                   string         `bson:"id" json:"id"`
	Type                 DamageType     `bson:"type" json:"type"`
	Severity             DamageSeverity `bson:"severity" json:"severity"`
	Zone                 string         `bson:"zone,omitempty" json:"zone,omitempty"`
	Description          string         `bson:"description,omitempty" json:"description,omitempty"`
	EstimatedRepairHours float64        `bson:"estimatedRepairHours,omitempty" json:"estimatedRepairHours,omitempty"`
}

// FilthinessReport rates how dirty the vehicle is, 0-100 overall plus
// per-zone scores.
type FilthinessReport struct {
	Overall int            `bson:"overall" json:"overall"`
	Zones   map[string]int `bson:"zones,omitempty" json:"zones,omitempty"`
}

// Inspection is the intake record a booking originates from.
type Inspection struct {
	ID         string           `bson:"id" json:"id"`
	TenantID   string           `bson:"tenantId" json:"tenantId"`
	Customer   CustomerContact  `bson:"customer" json:"customer"`
	Vehicle    VehicleInfo      `bson:"vehicle" json:"vehicle"`
	Damages    []Damage         `bson:"damages,omitempty" json:"damages,omitempty"`
	Filthiness FilthinessReport `bson:"filthiness" json:"filthiness"`
	Status     InspectionStatus `bson:"status" json:"status"`
	CreatedAt  time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// WeatherSnapshot feeds the weather adjustment stage of the pricing
// calculator.
type WeatherSnapshot struct {
	TempC           float64 `bson:"tempC" json:"tempC"`
	Humidity        float64 `bson:"humidity" json:"humidity"` // percent
	PrecipitationMM float64 `bson:"precipitationMm" json:"precipitationMm"`
	WindKPH         float64 `bson:"windKph" json:"windKph"`
	UVIndex         float64 `bson:"uvIndex" json:"uvIndex"`
}
