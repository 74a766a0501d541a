package scheduling

import (
	"fmt"

	"legalaid/models"
)

// CheckTransition validates a status transition against the appointment
// lifecycle: PENDING may move to CONFIRMED or REJECTED, both terminal, and
// only the booked provider (or an admin acting on their behalf) may move it.
// Requesters hold creation rights only.
func CheckTransition(appt *models.Appointment, actor models.Actor, next models.AppointmentStatus) error {
	if appt == nil {
		return NewNotFoundError("appointment does not exist")
	}
	if next != models.AppointmentConfirmed && next != models.AppointmentRejected {
		return NewValidationError(fmt.Sprintf("unsupported target status %q", next))
	}
	if appt.Status.Terminal() {
		return NewIllegalTransitionError(fmt.Sprintf("appointment is already %s", appt.Status))
	}
	if actor.Role == models.RoleAdmin {
		return nil
	}
	if !actor.Role.IsProviderRole() {
		return NewAuthorizationError("only the booked provider may confirm or reject an appointment")
	}
	if actor.ID != appt.ProviderID {
		return NewAuthorizationError("appointment belongs to a different provider")
	}
	return nil
}
