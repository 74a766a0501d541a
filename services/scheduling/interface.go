package scheduling

import (
	"context"
	"time"

	appointmentRepo "legalaid/database/repository/appointment"
	"legalaid/models"
	"legalaid/services/events"
)

// BookingRequest is the payload for creating an appointment from a selected
// slot. Force marks an intentional override of a soft slot conflict.
type BookingRequest struct {
	ProviderID   string      `json:"providerId"`
	ProviderRole models.Role `json:"providerRole"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      time.Time   `json:"endTime,omitempty"` // defaults to StartTime + slot duration
	Type         string      `json:"type"`
	Description  string      `json:"description,omitempty"`
	CaseID       *string     `json:"caseId,omitempty"`
	Force        bool        `json:"force,omitempty"`
}

// Notifier is the slice of the notification service the engine depends on.
type Notifier interface {
	NotifyAppointmentCreated(ctx context.Context, appt *models.Appointment) error
	NotifyStatusChanged(ctx context.Context, appt *models.Appointment) error
}

// ReminderScheduler enqueues a deferred reminder for a confirmed appointment.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt *models.Appointment) error
}

// SchedulingService drives the appointment lifecycle: booking with conflict
// resolution, provider-side status transitions, and the availability
// projection.
type SchedulingService interface {
	RequestBooking(ctx context.Context, requester models.Actor, req BookingRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.AppointmentStatus) (*models.Appointment, error)
	ListMine(ctx context.Context, actor models.Actor) ([]models.Appointment, error)
	ResolveAvailability(ctx context.Context, providerID string, providerRole models.Role, day time.Time, requesterID string, requesterRole models.Role) ([]models.Slot, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Repo         appointmentRepo.AppointmentRepository
	Resolver     *AvailabilityResolver
	Notifier     Notifier
	Reminders    ReminderScheduler // optional
	Bus          *events.Bus
	SlotDuration time.Duration // zero means one hour
}

func (s *DefaultSchedulingService) slotDuration() time.Duration {
	if s.SlotDuration <= 0 {
		return time.Hour
	}
	return s.SlotDuration
}
