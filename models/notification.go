package models

import "time"

// NotificationType tags what a notification references.
type NotificationType string

const (
	NotificationAppointment NotificationType = "APPOINTMENT"
	NotificationMessage     NotificationType = "MESSAGE"
	NotificationMatch       NotificationType = "MATCH"
)

// Notification is created by the store whenever an appointment is created or
// changes status. The recipient exclusively owns read and delete rights.
type Notification struct {
	ID                string             `bson:"id" json:"id"`
	UserID            string             `bson:"user_id" json:"userId"` // recipient
	Type              NotificationType   `bson:"type" json:"type"`
	Message           string             `bson:"message" json:"message"`
	ReferenceID       string             `bson:"reference_id,omitempty" json:"referenceId,omitempty"` // appointment ID when Type is APPOINTMENT
	AppointmentStatus *AppointmentStatus `bson:"appointment_status,omitempty" json:"appointmentStatus,omitempty"`
	IsRead            bool               `bson:"is_read" json:"isRead"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}
