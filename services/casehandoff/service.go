package casehandoff

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "legalaid/database/repository/appointment"
	caseRepo "legalaid/database/repository/legalcase"
	"legalaid/models"
	"legalaid/services/events"
	"legalaid/utils"

	"go.uber.org/zap"
)

// HandoffError is a coded failure from the hand-off gate.
type HandoffError struct {
	Code    string
	Message string
}

func (e *HandoffError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeNotEligible   = "NOT_ELIGIBLE"
	CodeNotAuthorized = "NOT_AUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
)

// HandoffService lets a provider formally take ownership of a citizen's case
// once their appointment is confirmed.
type HandoffService interface {
	GetCase(ctx context.Context, caseID string) (*models.LegalCase, error)
	Accept(ctx context.Context, provider models.Actor, caseID, appointmentID string) (*models.LegalCase, error)
}

// DefaultHandoffService is the production implementation.
type DefaultHandoffService struct {
	Cases        caseRepo.CaseRepository
	Appointments appointmentRepo.AppointmentRepository
	Bus          *events.Bus
}

func (s *DefaultHandoffService) GetCase(ctx context.Context, caseID string) (*models.LegalCase, error) {
	c, err := s.Cases.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, caseRepo.ErrNotFound) {
			return nil, &HandoffError{Code: CodeNotFound, Message: fmt.Sprintf("case %s does not exist", caseID)}
		}
		return nil, err
	}
	return c, nil
}

// Accept re-validates the guard against the store and assigns the case keyed
// by (caseID, appointmentID). On success the appointment-updated signal is
// re-broadcast so every view reflects the new ownership.
func (s *DefaultHandoffService) Accept(ctx context.Context, provider models.Actor, caseID, appointmentID string) (*models.LegalCase, error) {
	logger := utils.GetLogger()

	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, &HandoffError{Code: CodeNotFound, Message: fmt.Sprintf("appointment %s does not exist", appointmentID)}
		}
		return nil, err
	}
	if appt.ProviderID != provider.ID {
		return nil, &HandoffError{Code: CodeNotAuthorized, Message: "appointment belongs to a different provider"}
	}
	if !CanAccept(appt) {
		return nil, &HandoffError{Code: CodeNotEligible, Message: "appointment must be confirmed and reference a case"}
	}
	if *appt.CaseID != caseID {
		return nil, &HandoffError{Code: CodeNotEligible, Message: "appointment references a different case"}
	}

	c, err := s.Cases.Assign(ctx, caseID, provider.ID, appointmentID)
	if err != nil {
		if errors.Is(err, caseRepo.ErrNotFound) {
			return nil, &HandoffError{Code: CodeNotFound, Message: fmt.Sprintf("case %s does not exist", caseID)}
		}
		return nil, err
	}

	s.Bus.PublishAppointmentUpdated(appointmentID)
	logger.Info("case accepted",
		zap.String("caseID", caseID),
		zap.String("providerID", provider.ID),
		zap.String("appointmentID", appointmentID))
	return c, nil
}
