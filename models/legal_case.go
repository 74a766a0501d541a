package models

import "time"

// CaseStatus is the lifecycle state of a citizen's legal case.
type CaseStatus string

const (
	CaseOpen     CaseStatus = "OPEN"
	CaseAssigned CaseStatus = "ASSIGNED"
	CaseClosed   CaseStatus = "CLOSED"
)

// LegalCase is a citizen's matter. A provider takes ownership through the
// hand-off gate once a confirmed appointment references the case.
type LegalCase struct {
	ID                 string     `bson:"id" json:"id"`
	CitizenID          string     `bson:"citizen_id" json:"citizenId"`
	Title              string     `bson:"title" json:"title"`
	Description        string     `bson:"description,omitempty" json:"description,omitempty"`
	Status             CaseStatus `bson:"status" json:"status"`
	AssignedProviderID string     `bson:"assigned_provider_id,omitempty" json:"assignedProviderId,omitempty"`
	AppointmentID      string     `bson:"appointment_id,omitempty" json:"appointmentId,omitempty"` // appointment through which the case was accepted
	CreatedAt          time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updatedAt"`
}
