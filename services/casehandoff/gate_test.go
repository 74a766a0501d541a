package casehandoff

import (
	"testing"

	"legalaid/models"
)

func TestCanAccept(t *testing.T) {
	caseID := "case-1"
	emptyCaseID := ""

	tests := []struct {
		name string
		appt *models.Appointment
		want bool
	}{
		{
			name: "confirmed with case",
			appt: &models.Appointment{Status: models.AppointmentConfirmed, CaseID: &caseID},
			want: true,
		},
		{
			name: "nil appointment",
			appt: nil,
			want: false,
		},
		{
			name: "pending with case",
			appt: &models.Appointment{Status: models.AppointmentPending, CaseID: &caseID},
			want: false,
		},
		{
			name: "rejected with case",
			appt: &models.Appointment{Status: models.AppointmentRejected, CaseID: &caseID},
			want: false,
		},
		{
			name: "confirmed without case",
			appt: &models.Appointment{Status: models.AppointmentConfirmed},
			want: false,
		},
		{
			name: "confirmed with empty case reference",
			appt: &models.Appointment{Status: models.AppointmentConfirmed, CaseID: &emptyCaseID},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccept(tt.appt); got != tt.want {
				t.Errorf("CanAccept() = %v, want %v", got, tt.want)
			}
		})
	}
}
