package tasks

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"legalaid/models"
)

func TestNewReminderTaskCarriesPayload(t *testing.T) {
	start := time.Date(2026, time.February, 10, 14, 0, 0, 0, time.UTC)
	payload := models.ReminderPayload{
		AppointmentID: "appt-1",
		UserID:        "citizen-1",
		StartTime:     start,
		Message:       "Upcoming appointment at 14:00",
	}

	task, opts, err := NewReminderTask(payload, start.Add(-time.Hour))
	if err != nil {
		t.Fatalf("NewReminderTask() error = %v", err)
	}
	if task.Type() != TypeSendReminder {
		t.Errorf("task type = %q, want %q", task.Type(), TypeSendReminder)
	}
	if len(opts) != 1 {
		t.Errorf("options = %d, want 1 (process-at)", len(opts))
	}

	var got models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &got); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if got.AppointmentID != "appt-1" || got.UserID != "citizen-1" || !got.StartTime.Equal(start) {
		t.Errorf("payload = %+v", got)
	}
}

// Appointments starting within the lead window get no reminder; the
// scheduler returns without touching the queue (the nil client would panic
// otherwise).
func TestScheduleReminderSkipsImminentAppointments(t *testing.T) {
	s := &AsynqReminderScheduler{}

	appt := &models.Appointment{
		ID:          "appt-1",
		RequesterID: "citizen-1",
		ProviderID:  "lawyer-1",
		StartTime:   time.Now().Add(30 * time.Minute),
	}
	if err := s.ScheduleReminder(context.Background(), appt); err != nil {
		t.Fatalf("ScheduleReminder() error = %v", err)
	}

	appt.StartTime = time.Now().Add(-time.Hour)
	if err := s.ScheduleReminder(context.Background(), appt); err != nil {
		t.Fatalf("ScheduleReminder() for past appointment error = %v", err)
	}
}
