package inspectionRepo

import (
	"context"

	"detailops/models"
)

// InspectionRepository provides tenant-scoped access to inspections.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *models.Inspection) error
	GetByID(ctx context.Context, tenantID, inspectionID string) (*models.Inspection, error)
	SetStatus(ctx context.Context, tenantID, inspectionID string, status models.InspectionStatus) error
}
