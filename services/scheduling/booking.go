package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "legalaid/database/repository/appointment"
	"legalaid/models"
	"legalaid/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestBooking creates a PENDING appointment for the requester. When the
// requested window overlaps an existing non-rejected appointment the request
// fails with a SLOT_CONFLICT error carrying a human-readable description.
// If every overlap is still PENDING, resubmitting with Force set commits the
// override, with the conflict description prefixed onto the stored
// description as the audit trail; a CONFIRMED overlap cannot be forced.
func (s *DefaultSchedulingService) RequestBooking(ctx context.Context, requester models.Actor, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	// Local validation first: no store call is issued for an incomplete form.
	if req.ProviderID == "" {
		return nil, NewValidationError("providerId is required")
	}
	if req.StartTime.IsZero() {
		return nil, NewValidationError("startTime is required")
	}
	if !req.ProviderRole.IsProviderRole() {
		return nil, NewValidationError(fmt.Sprintf("role %q cannot be booked", req.ProviderRole))
	}
	if !requester.Role.IsRequesterRole() {
		return nil, NewAuthorizationError("only citizens may request appointments")
	}

	end := req.EndTime
	if end.IsZero() {
		end = req.StartTime.Add(s.slotDuration())
	}
	if !end.After(req.StartTime) {
		return nil, NewValidationError("endTime must be after startTime")
	}

	overlapping, err := s.Repo.FindOverlapping(ctx, req.ProviderID, req.StartTime, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicting appointments: %w", err)
	}

	description := req.Description
	if len(overlapping) > 0 {
		conflictDesc := describeConflict(overlapping)
		// Force only clears soft clashes with undecided requests. A slot
		// held by a CONFIRMED appointment is booked outright and stays
		// closed no matter what the requester submits.
		if hasConfirmed(overlapping) || !req.Force {
			return nil, NewConflictError(conflictDesc)
		}
		description = overrideDescription(conflictDesc, req.Description)
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:            uuid.New().String(),
		RequesterID:   requester.ID,
		RequesterRole: requester.Role,
		ProviderID:    req.ProviderID,
		ProviderRole:  req.ProviderRole,
		StartTime:     req.StartTime,
		EndTime:       end,
		Type:          req.Type,
		Description:   description,
		Status:        models.AppointmentPending,
		CaseID:        req.CaseID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	if err := s.Notifier.NotifyAppointmentCreated(ctx, appt); err != nil {
		logger.Warn("failed to notify provider of new appointment",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
	s.Bus.PublishAppointmentUpdated(appt.ID)

	logger.Info("appointment requested",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.Bool("forced", req.Force && len(overlapping) > 0))
	return appt, nil
}

// UpdateStatus performs a provider-side PENDING -> CONFIRMED | REJECTED
// transition. Terminal appointments reject any further transition.
func (s *DefaultSchedulingService) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("appointment %s does not exist", id))
		}
		return nil, err
	}

	if err := CheckTransition(appt, actor, status); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		// The store re-checks the PENDING precondition atomically, so a
		// concurrent decision that landed between our read and write
		// surfaces here rather than overwriting a terminal status.
		if errors.Is(err, appointmentRepo.ErrNotPending) {
			return nil, NewIllegalTransitionError(fmt.Sprintf("appointment %s has already been decided", id))
		}
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("appointment %s does not exist", id))
		}
		return nil, err
	}

	if err := s.Notifier.NotifyStatusChanged(ctx, updated); err != nil {
		logger.Warn("failed to notify requester of status change",
			zap.String("appointmentID", id), zap.Error(err))
	}
	if status == models.AppointmentConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, updated); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("appointmentID", id), zap.Error(err))
		}
	}
	s.Bus.PublishAppointmentUpdated(id)

	logger.Info("appointment status updated",
		zap.String("appointmentID", id),
		zap.String("status", string(status)))
	return updated, nil
}

// ListMine returns appointments where the actor appears as requester or
// provider.
func (s *DefaultSchedulingService) ListMine(ctx context.Context, actor models.Actor) ([]models.Appointment, error) {
	if actor.ID == "" {
		return nil, NewAuthorizationError("no authenticated actor")
	}
	return s.Repo.ListByActor(ctx, actor.ID)
}

// ResolveAvailability delegates to the availability projection.
func (s *DefaultSchedulingService) ResolveAvailability(ctx context.Context, providerID string, providerRole models.Role, day time.Time, requesterID string, requesterRole models.Role) ([]models.Slot, error) {
	return s.Resolver.Resolve(ctx, providerID, providerRole, day, requesterID, requesterRole)
}

func hasConfirmed(appts []models.Appointment) bool {
	for _, a := range appts {
		if a.Status == models.AppointmentConfirmed {
			return true
		}
	}
	return false
}

// describeConflict renders the clashing appointments for the confirmation
// dialog shown to the requester.
func describeConflict(overlapping []models.Appointment) string {
	parts := make([]string, 0, len(overlapping))
	for _, a := range overlapping {
		parts = append(parts, fmt.Sprintf("a %s appointment from %s to %s",
			strings.ToLower(string(a.Status)),
			a.StartTime.Format("15:04"),
			a.EndTime.Format("15:04")))
	}
	return fmt.Sprintf("The provider already has %s on %s",
		strings.Join(parts, " and "),
		overlapping[0].StartTime.Format("Jan 2"))
}

// overrideDescription prefixes the conflict description onto the submitted
// one, marking the stored record as an intentional double booking.
func overrideDescription(conflictDesc, submitted string) string {
	if submitted == "" {
		return conflictDesc
	}
	return conflictDesc + " | " + submitted
}
