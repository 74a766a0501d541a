package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment request.
// PENDING is the only non-terminal state.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentRejected  AppointmentStatus = "REJECTED"
)

// Terminal reports whether no further status transition is permitted.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentConfirmed || s == AppointmentRejected
}

// Canonical appointment types consumed by the dashboards. Free-text labels
// are accepted and stored as-is.
const (
	AppointmentTypeCall      = "CALL"
	AppointmentTypeVideoCall = "VIDEO_CALL"
	AppointmentTypeMeeting   = "MEETING"
)

// Appointment represents a citizen's booking request against a provider.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`                                   // Unique identifier (UUID), assigned on creation
	RequesterID   string            `bson:"requester_id" json:"requesterId"`                // Citizen who asked for the appointment
	RequesterRole Role              `bson:"requester_role" json:"requesterRole"`            // Always CITIZEN
	ProviderID    string            `bson:"provider_id" json:"providerId"`                  // Lawyer or NGO being booked
	ProviderRole  Role              `bson:"provider_role" json:"providerRole"`              // LAWYER or NGO
	StartTime     time.Time         `bson:"start_time" json:"startTime"`                    //
	EndTime       time.Time         `bson:"end_time" json:"endTime"`                        // StartTime + 1h unless overridden
	Type          string            `bson:"type" json:"type"`                               // CALL, VIDEO_CALL, MEETING or free text
	Description   string            `bson:"description,omitempty" json:"description"`       //
	Status        AppointmentStatus `bson:"status" json:"status"`                           // PENDING, CONFIRMED or REJECTED
	CaseID        *string           `bson:"case_id,omitempty" json:"caseId,omitempty"`      // Set once a provider agreed to take the matter
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`                    //
	UpdatedAt     time.Time         `bson:"updated_at" json:"updatedAt"`                    //
}

// Overlaps reports whether the appointment's window intersects [start, end).
func (a Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}
