package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"detailops/database"
	"detailops/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo is the MongoDB implementation of BookingRepository.
type MongoBookingRepo struct {
	bookingColl    *mongo.Collection
	inspectionColl *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl:    db.Collection("bookings"),
		inspectionColl: db.Collection("inspections"),
	}
}

func (repo *MongoBookingRepo) CreateWithInspectionUpdate(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		if booking.InspectionID != "" {
			filter := bson.M{"id": booking.InspectionID, "tenantId": booking.TenantID}
			update := bson.M{"$set": bson.M{
				"status":    models.InspectionBooked,
				"updatedAt": time.Now(),
			}}
			res, err := repo.inspectionColl.UpdateOne(sc, filter, update)
			if err != nil {
				return fmt.Errorf("mark inspection booked failed: %w", err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("inspection %s not found for tenant", booking.InspectionID)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, tenantID, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{"id": bookingID, "tenantId": tenantID}
	if err := repo.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	booking.UpdatedAt = time.Now()
	filter := bson.M{"id": booking.ID, "tenantId": booking.TenantID}
	res, err := repo.bookingColl.ReplaceOne(ctx, filter, booking)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found for tenant", booking.ID)
	}
	return nil
}

func (repo *MongoBookingRepo) FindOverlapping(ctx context.Context, tenantID, teamID string, start, end time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"tenantId":       tenantID,
		"assignedTeamId": teamID,
		"status": bson.M{"$nin": bson.A{
			models.BookingCancelled,
			models.BookingNoShow,
		}},
		"scheduledStart": bson.M{"$lt": end},
		"scheduledEnd":   bson.M{"$gt": start},
	}
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("overlap query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding overlap results: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"status":       bson.M{"$in": bson.A{models.BookingScheduled, models.BookingCancelled}},
		"scheduledEnd": bson.M{"$lt": cutoff},
	}
	res, err := repo.bookingColl.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("stale booking cleanup failed: %w", err)
	}
	return res.DeletedCount, nil
}
