package caseRepo

import (
	"context"
	"errors"

	"legalaid/models"
)

// ErrNotFound is returned when no case matches the given ID.
var ErrNotFound = errors.New("case not found")

// CaseRepository persists citizens' legal cases.
type CaseRepository interface {
	GetByID(ctx context.Context, id string) (*models.LegalCase, error)
	// Assign records provider ownership of the case, keyed by the appointment
	// through which the hand-off happened.
	Assign(ctx context.Context, caseID, providerID, appointmentID string) (*models.LegalCase, error)
}
