package models

import "time"

// ReminderPayload is the task payload for a deferred appointment reminder.
// Both participants receive one shortly before the appointment starts.
type ReminderPayload struct {
	AppointmentID string    `json:"appointmentId"`
	UserID        string    `json:"userId"` // recipient
	StartTime     time.Time `json:"startTime"`
	Message       string    `json:"message"`
}
