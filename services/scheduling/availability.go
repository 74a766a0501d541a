package scheduling

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "legalaid/database/repository/appointment"
	scheduleRepo "legalaid/database/repository/schedule"
	"legalaid/models"
	"legalaid/utils"

	"go.uber.org/zap"
)

// AvailabilityResolver projects a provider's day into an ordered slot grid.
// The projection is recomputed on every call and never cached: appointments
// are mutated out of band by other actors.
type AvailabilityResolver struct {
	Appointments appointmentRepo.AppointmentRepository
	Schedules    scheduleRepo.ScheduleRepository

	// Slot grid in minutes from midnight. One slot per SlotMin.
	DayStartMin int
	DayEndMin   int
	SlotMin     int
}

// Resolve computes the status of every bookable slot for (provider, day) as
// seen by the given requester. Slot precedence: UNAVAILABLE (outside the
// provider's declared window or blocked), then BOOKED (a confirmed
// appointment covers it), then CONFLICT (an unresolved pending appointment
// overlaps it), then AVAILABLE.
func (r *AvailabilityResolver) Resolve(
	ctx context.Context,
	providerID string,
	providerRole models.Role,
	day time.Time,
	requesterID string,
	requesterRole models.Role,
) ([]models.Slot, error) {
	logger := utils.GetLogger()

	if providerID == "" {
		return nil, NewValidationError("providerId is required")
	}
	if !providerRole.IsProviderRole() {
		return nil, NewValidationError(fmt.Sprintf("role %q cannot be booked", providerRole))
	}

	// Provider-declared window and blocks; fall back to the configured
	// business-hours grid when the provider never declared a schedule.
	workStart, workEnd := r.DayStartMin, r.DayEndMin
	var schedule *models.ProviderSchedule
	if r.Schedules != nil {
		s, err := r.Schedules.GetByProviderID(ctx, providerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load provider schedule: %w", err)
		}
		schedule = s
	}
	if schedule != nil {
		workStart, workEnd = schedule.WorkStartMin, schedule.WorkEndMin
	}

	appts, err := r.Appointments.ListForProviderOnDate(ctx, providerID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dateStr := dayStart.Format("2006-01-02")

	var slots []models.Slot
	for minute := r.DayStartMin; minute+r.SlotMin <= r.DayEndMin; minute += r.SlotMin {
		slotStart := dayStart.Add(time.Duration(minute) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(r.SlotMin) * time.Minute)

		slot := models.Slot{
			Time:        slotStart,
			DisplayTime: slotStart.Format("15:04"),
			Status:      r.slotStatus(schedule, dateStr, minute, workStart, workEnd, appts, slotStart, slotEnd),
		}
		slots = append(slots, slot)
	}

	logger.Debug("resolved availability",
		zap.String("providerID", providerID),
		zap.String("date", dateStr),
		zap.Int("slots", len(slots)))
	return slots, nil
}

func (r *AvailabilityResolver) slotStatus(
	schedule *models.ProviderSchedule,
	dateStr string,
	minute, workStart, workEnd int,
	appts []models.Appointment,
	slotStart, slotEnd time.Time,
) models.SlotStatus {
	if minute < workStart || minute+r.SlotMin > workEnd {
		return models.SlotUnavailable
	}
	if schedule != nil && schedule.IsBlocked(dateStr, minute) {
		return models.SlotUnavailable
	}

	// A confirmed appointment makes the slot inert for everyone. A pending
	// one is a soft clash: still selectable, gated behind an explicit
	// override decision.
	pending := false
	for _, a := range appts {
		if !a.Overlaps(slotStart, slotEnd) {
			continue
		}
		switch a.Status {
		case models.AppointmentConfirmed:
			return models.SlotBooked
		case models.AppointmentPending:
			pending = true
		}
	}
	if pending {
		return models.SlotConflict
	}
	return models.SlotAvailable
}
