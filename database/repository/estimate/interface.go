package estimateRepo

import (
	"context"

	"detailops/models"
)

// EstimateRepository provides tenant-scoped access to persisted estimates.
type EstimateRepository interface {
	Create(ctx context.Context, estimate *models.Estimate) error
	GetByID(ctx context.Context, tenantID, estimateID string) (*models.Estimate, error)
	// FirstApprovedForInspection returns the first approved estimate attached
	// to the inspection, or nil when none exists.
	FirstApprovedForInspection(ctx context.Context, tenantID, inspectionID string) (*models.Estimate, error)
}
