package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legalaid/database"
	"legalaid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoScheduleRepo{
		coll: db.Collection("provider_schedules"),
	}
}

func (repo *mongoScheduleRepo) GetByProviderID(ctx context.Context, providerID string) (*models.ProviderSchedule, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.ProviderSchedule
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"provider_id": providerID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule for provider %s: %w", providerID, err)
	}
	return &s, nil
}

func (repo *mongoScheduleRepo) Upsert(ctx context.Context, schedule *models.ProviderSchedule) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": schedule.ProviderID}
	update := bson.M{"$set": schedule}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting schedule for provider %s: %w", schedule.ProviderID, err)
	}
	return nil
}

func (repo *mongoScheduleRepo) BlockSlot(ctx context.Context, providerID string, blocked models.BlockedSlot) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID}
	update := bson.M{"$addToSet": bson.M{"blocked": blocked}}
	if _, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error blocking slot for provider %s: %w", providerID, err)
	}
	return nil
}

func (repo *mongoScheduleRepo) UnblockSlot(ctx context.Context, providerID, date string, startMinute int) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID}
	update := bson.M{"$pull": bson.M{"blocked": bson.M{"date": date, "start_minute": startMinute}}}
	if _, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error unblocking slot for provider %s: %w", providerID, err)
	}
	return nil
}
