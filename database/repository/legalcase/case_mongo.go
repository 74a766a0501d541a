package caseRepo

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

type mongoCaseRepo struct {
	coll *mongo.Collection
}

// NewMongoCaseRepo constructs a new MongoDB CaseRepository.
func NewMongoCaseRepo() CaseRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoCaseRepo{
		coll: db.Collection("cases"),
	}
}

func (repo *mongoCaseRepo) GetByID(ctx context.Context, id string) (*models.LegalCase, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.LegalCase
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching case %s: %w", id, err)
	}
	return &c, nil
}

func (repo *mongoCaseRepo) Assign(ctx context.Context, caseID, providerID, appointmentID string) (*models.LegalCase, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": caseID}
	update := bson.M{"$set": bson.M{
		"status":               models.CaseAssigned,
		"assigned_provider_id": providerID,
		"appointment_id":       appointmentID,
		"updated_at":           time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.LegalCase
	err := repo.coll.FindOneAndUpdate(ctxWithTimeout, filter, update, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error assigning case %s: %w", caseID, err)
	}
	return &c, nil
}
