package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"legalaid/models"
)

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// ErrNotPending is returned by UpdateStatus when the appointment exists but
// has already left PENDING, so the requested transition lost the race.
var ErrNotPending = errors.New("appointment is no longer pending")

// AppointmentRepository is the store of record for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListByActor returns appointments where the actor is requester or provider,
	// ordered by start time.
	ListByActor(ctx context.Context, actorID string) ([]models.Appointment, error)
	// FindOverlapping returns non-REJECTED appointments for the provider whose
	// window intersects [start, end), ordered by start time.
	FindOverlapping(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error)
	// ListForProviderOnDate returns non-REJECTED appointments for the provider
	// on the given local day.
	ListForProviderOnDate(ctx context.Context, providerID string, day time.Time) ([]models.Appointment, error)
	// UpdateStatus transitions a PENDING appointment to the given status and
	// returns the updated document. The PENDING precondition is checked
	// atomically by the store; a concurrent decision surfaces as ErrNotPending.
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error)
}
