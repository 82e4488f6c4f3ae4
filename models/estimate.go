package models

import "time"

// EstimateStatus tracks a persisted estimate's approval state.
type EstimateStatus string

const (
	EstimateDraft    EstimateStatus = "draft"
	EstimateApproved EstimateStatus = "approved"
	EstimateRejected EstimateStatus = "rejected"
)

// LineItem is one customer-facing row in a price breakdown.
type LineItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	UnitPrice   int64   `bson:"unitPrice" json:"unitPrice"` // cents
	Total       int64   `bson:"total" json:"total"`         // cents
}

// EstimateBreakdown is the structured output of the pricing calculator.
// Every amount is integer cents; zero-value stages stay in the structure but
// are omitted from LineItems.
type EstimateBreakdown struct {
	BaseLabor         int64      `bson:"baseLabor" json:"baseLabor"`
	DamageAdjustment  int64      `bson:"damageAdjustment" json:"damageAdjustment"`
	CleanlinessAmount int64      `bson:"cleanlinessAmount" json:"cleanlinessAmount"`
	WeatherAmount     int64      `bson:"weatherAmount" json:"weatherAmount"`
	SurgeAmount       int64      `bson:"surgeAmount" json:"surgeAmount"`
	Materials         int64      `bson:"materials" json:"materials"`
	Discount          int64      `bson:"discount" json:"discount"`
	Subtotal          int64      `bson:"subtotal" json:"subtotal"`
	Tax               int64      `bson:"tax" json:"tax"`
	Total             int64      `bson:"total" json:"total"`
	LineItems         []LineItem `bson:"lineItems" json:"lineItems"`
}

// Estimate is a frozen snapshot of one breakdown attached to an inspection.
// Once a booking references an approved estimate it owns its own total;
// later estimate edits do not flow through.
type Estimate struct {
	ID           string            `bson:"id" json:"id"`
	TenantID     string            `bson:"tenantId" json:"tenantId"`
	InspectionID string            `bson:"inspectionId" json:"inspectionId"`
	ServiceType  ServiceType       `bson:"serviceType" json:"serviceType"`
	Status       EstimateStatus    `bson:"status" json:"status"`
	Breakdown    EstimateBreakdown `bson:"breakdown" json:"breakdown"`
	Total        int64             `bson:"total" json:"total"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt"`
}
