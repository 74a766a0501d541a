package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"legalaid/models"
	"legalaid/services/casehandoff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeHandoffService serves canned case results.
type fakeHandoffService struct {
	getResult    *models.LegalCase
	getErr       error
	acceptResult *models.LegalCase
	acceptErr    error

	acceptedBy     models.Actor
	acceptedCase   string
	acceptedApptID string
}

func (f *fakeHandoffService) GetCase(ctx context.Context, caseID string) (*models.LegalCase, error) {
	return f.getResult, f.getErr
}

func (f *fakeHandoffService) Accept(ctx context.Context, provider models.Actor, caseID, appointmentID string) (*models.LegalCase, error) {
	f.acceptedBy = provider
	f.acceptedCase = caseID
	f.acceptedApptID = appointmentID
	return f.acceptResult, f.acceptErr
}

func caseRouter(svc casehandoff.HandoffService, actor models.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCaseHandler(svc, zap.NewNop())
	r.GET("/api/cases/:id", asActor(actor), h.GetCaseHandler)
	r.POST("/api/cases/:id/assign", asActor(actor), h.AcceptCaseHandler)
	return r
}

var testLawyer = models.Actor{ID: "lawyer-1", Role: models.RoleLawyer}

func TestGetCaseHandler(t *testing.T) {
	svc := &fakeHandoffService{
		getResult: &models.LegalCase{ID: "case-1", Title: "Eviction notice", Status: models.CaseOpen},
	}
	r := caseRouter(svc, testLawyer)

	w := doJSON(t, r, http.MethodGet, "/api/cases/case-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Case models.LegalCase `json:"case"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Case.Title != "Eviction notice" {
		t.Errorf("case = %+v", resp.Case)
	}
}

func TestAcceptCaseHandler(t *testing.T) {
	svc := &fakeHandoffService{
		acceptResult: &models.LegalCase{ID: "case-1", Status: models.CaseAssigned, AssignedProviderID: "lawyer-1"},
	}
	r := caseRouter(svc, testLawyer)

	w := doJSON(t, r, http.MethodPost, "/api/cases/case-1/assign", gin.H{"appointment_id": "appt-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if svc.acceptedBy.ID != "lawyer-1" || svc.acceptedCase != "case-1" || svc.acceptedApptID != "appt-1" {
		t.Errorf("service saw (%s, %s, %s)", svc.acceptedBy.ID, svc.acceptedCase, svc.acceptedApptID)
	}
}

func TestAcceptCaseHandlerRequiresAppointmentID(t *testing.T) {
	svc := &fakeHandoffService{}
	r := caseRouter(svc, testLawyer)

	w := doJSON(t, r, http.MethodPost, "/api/cases/case-1/assign", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAcceptCaseHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", &casehandoff.HandoffError{Code: casehandoff.CodeNotFound, Message: "case case-1 does not exist"}, http.StatusNotFound},
		{"not authorized", &casehandoff.HandoffError{Code: casehandoff.CodeNotAuthorized, Message: "appointment belongs to a different provider"}, http.StatusForbidden},
		{"not eligible", &casehandoff.HandoffError{Code: casehandoff.CodeNotEligible, Message: "appointment must be confirmed and reference a case"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeHandoffService{acceptErr: tt.err}
			r := caseRouter(svc, testLawyer)

			w := doJSON(t, r, http.MethodPost, "/api/cases/case-1/assign", gin.H{"appointment_id": "appt-1"})
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			resp := decodeError(t, w)
			var he *casehandoff.HandoffError
			if !errors.As(tt.err, &he) {
				t.Fatal("test error is not a HandoffError")
			}
			if resp.Code != he.Code {
				t.Errorf("code = %q, want %q", resp.Code, he.Code)
			}
		})
	}
}
