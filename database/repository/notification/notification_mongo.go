package notificationRepo

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

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}

func (repo *mongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, n); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

func (repo *mongoNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := repo.coll.Find(ctxWithTimeout, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications for user %s: %w", userID, err)
	}
	defer cur.Close(ctxWithTimeout)

	var list []models.Notification
	if err := cur.All(ctxWithTimeout, &list); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %w", err)
	}
	return list, nil
}

func (repo *mongoNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctxWithTimeout, bson.M{"user_id": userID, "is_read": false})
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

func (repo *mongoNotificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctxWithTimeout,
		bson.M{"id": id, "user_id": userID},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("error marking notification %s read: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repo.classifyMiss(ctxWithTimeout, id)
	}
	return nil
}

func (repo *mongoNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.UpdateMany(ctxWithTimeout,
		bson.M{"user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("error marking notifications read for user %s: %w", userID, err)
	}
	return nil
}

func (repo *mongoNotificationRepo) Delete(ctx context.Context, userID, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting notification %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repo.classifyMiss(ctxWithTimeout, id)
	}
	return nil
}

// classifyMiss distinguishes a missing notification from one owned by a
// different user so callers can map the failure to the right status code.
func (repo *mongoNotificationRepo) classifyMiss(ctx context.Context, id string) error {
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("error looking up notification %s: %w", id, err)
	}
	return ErrNotOwner
}
