package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"legalaid/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.MongoClient.Database(database.DatabaseName).Collection("appointments")

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Overlap query: provider + status + window bounds.
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "status", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("provider_status_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "requester_id", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("requester_start_idx"),
		},
	}

	_, err := coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
