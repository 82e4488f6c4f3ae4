package inspectionRepo

import (
	"context"
	"fmt"
	"time"

	"detailops/database"
	"detailops/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInspectionRepo is the MongoDB implementation of InspectionRepository.
type MongoInspectionRepo struct {
	coll *mongo.Collection
}

func NewMongoInspectionRepo() *MongoInspectionRepo {
	return &MongoInspectionRepo{coll: database.DB().Collection("inspections")}
}

func (repo *MongoInspectionRepo) Create(ctx context.Context, inspection *models.Inspection) error {
	now := time.Now()
	inspection.CreatedAt = now
	inspection.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, inspection); err != nil {
		return fmt.Errorf("insert inspection failed: %w", err)
	}
	return nil
}

func (repo *MongoInspectionRepo) GetByID(ctx context.Context, tenantID, inspectionID string) (*models.Inspection, error) {
	var inspection models.Inspection
	filter := bson.M{"id": inspectionID, "tenantId": tenantID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&inspection); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch inspection %s: %w", inspectionID, err)
	}
	return &inspection, nil
}

func (repo *MongoInspectionRepo) SetStatus(ctx context.Context, tenantID, inspectionID string, status models.InspectionStatus) error {
	filter := bson.M{"id": inspectionID, "tenantId": tenantID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update inspection %s: %w", inspectionID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("inspection %s not found for tenant", inspectionID)
	}
	return nil
}
