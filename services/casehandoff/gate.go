package casehandoff

import "legalaid/models"

// CanAccept is the pure guard deciding whether a provider may take ownership
// of a case from within a notification: the referenced appointment exists, is
// CONFIRMED, and carries a case reference. It gates which actions render; the
// store re-validates on the actual assignment call.
func CanAccept(appt *models.Appointment) bool {
	return appt != nil &&
		appt.Status == models.AppointmentConfirmed &&
		appt.CaseID != nil && *appt.CaseID != ""
}
