package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"legalaid/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// Lead time before the appointment start at which reminders fire.
const reminderLead = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks for confirmed appointments.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleReminder queues a reminder for both participants, processed one
// hour before the appointment starts. Appointments starting sooner than the
// lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt *models.Appointment) error {
	fireAt := appt.StartTime.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	message := fmt.Sprintf("Upcoming appointment at %s", appt.StartTime.Format("15:04"))
	for _, userID := range []string{appt.RequesterID, appt.ProviderID} {
		payload := models.ReminderPayload{
			AppointmentID: appt.ID,
			UserID:        userID,
			StartTime:     appt.StartTime,
			Message:       message,
		}
		task, opts, err := NewReminderTask(payload, fireAt)
		if err != nil {
			return fmt.Errorf("failed to build reminder task: %w", err)
		}
		if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
			return fmt.Errorf("failed to enqueue reminder for %s: %w", userID, err)
		}
	}
	return nil
}
