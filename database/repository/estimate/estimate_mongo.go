package estimateRepo

import (
	"context"
	"fmt"
	"time"

	"detailops/database"
	"detailops/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEstimateRepo is the MongoDB implementation of EstimateRepository.
type MongoEstimateRepo struct {
	coll *mongo.Collection
}

func NewMongoEstimateRepo() *MongoEstimateRepo {
	return &MongoEstimateRepo{coll: database.DB().Collection("estimates")}
}

func (repo *MongoEstimateRepo) Create(ctx context.Context, estimate *models.Estimate) error {
	now := time.Now()
	estimate.CreatedAt = now
	estimate.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, estimate); err != nil {
		return fmt.Errorf("insert estimate failed: %w", err)
	}
	return nil
}

func (repo *MongoEstimateRepo) GetByID(ctx context.Context, tenantID, estimateID string) (*models.Estimate, error) {
	var estimate models.Estimate
	filter := bson.M{"id": estimateID, "tenantId": tenantID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&estimate); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch estimate %s: %w", estimateID, err)
	}
	return &estimate, nil
}

func (repo *MongoEstimateRepo) FirstApprovedForInspection(ctx context.Context, tenantID, inspectionID string) (*models.Estimate, error) {
	var estimate models.Estimate
	filter := bson.M{
		"tenantId":     tenantID,
		"inspectionId": inspectionID,
		"status":       models.EstimateApproved,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if err := repo.coll.FindOne(ctx, filter, opts).Decode(&estimate); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch approved estimate for inspection %s: %w", inspectionID, err)
	}
	return &estimate, nil
}
