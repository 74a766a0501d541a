package appointmentRepo

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

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

// Create inserts a new appointment document.
func (repo *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (repo *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListByActor returns every appointment where the actor appears as requester
// or provider.
func (repo *mongoAppointmentRepo) ListByActor(ctx context.Context, actorID string) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"requester_id": actorID},
			{"provider_id": actorID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments for actor %s: %w", actorID, err)
	}
	defer cur.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cur.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// FindOverlapping returns the provider's non-REJECTED appointments whose
// window intersects [start, end).
func (repo *mongoAppointmentRepo) FindOverlapping(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"status":      bson.M{"$ne": models.AppointmentRejected},
		"start_time":  bson.M{"$lt": end},
		"end_time":    bson.M{"$gt": start},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping appointments: %w", err)
	}
	defer cur.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cur.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding overlapping appointments: %w", err)
	}
	return appts, nil
}

// ListForProviderOnDate returns the provider's non-REJECTED appointments for
// the local day containing the given time.
func (repo *mongoAppointmentRepo) ListForProviderOnDate(ctx context.Context, providerID string, day time.Time) ([]models.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return repo.FindOverlapping(ctx, providerID, dayStart, dayEnd)
}

// UpdateStatus sets the appointment status and returns the updated document.
// The filter pins the current status to PENDING so two concurrent decisions
// cannot both land; the losing write matches nothing.
func (repo *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.AppointmentPending}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	err := repo.coll.FindOneAndUpdate(ctxWithTimeout, filter, update, opts).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repo.classifyMiss(ctxWithTimeout, id)
		}
		return nil, fmt.Errorf("error updating status of appointment %s: %w", id, err)
	}
	return &appt, nil
}

// classifyMiss distinguishes a missing appointment from one that has already
// been decided by a concurrent transition.
func (repo *mongoAppointmentRepo) classifyMiss(ctx context.Context, id string) error {
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("error looking up appointment %s: %w", id, err)
	}
	return ErrNotPending
}
