package handlers

import (
	"errors"
	"net/http"

	"legalaid/middleware"
	"legalaid/services/casehandoff"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CaseHandler exposes the case hand-off surface.
type CaseHandler struct {
	Svc    casehandoff.HandoffService
	Logger *zap.Logger
}

func NewCaseHandler(svc casehandoff.HandoffService, logger *zap.Logger) *CaseHandler {
	return &CaseHandler{Svc: svc, Logger: logger}
}

// GetCaseHandler fetches a single case by id.
func (h *CaseHandler) GetCaseHandler(c *gin.Context) {
	legalCase, err := h.Svc.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeHandoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"case": legalCase})
}

// AcceptCaseHandler lets the provider behind a confirmed appointment take
// ownership of the referenced case.
func (h *CaseHandler) AcceptCaseHandler(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req struct {
		AppointmentID string `json:"appointment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, "VALIDATION", "appointment_id is required")
		return
	}

	legalCase, err := h.Svc.Accept(c.Request.Context(), actor, c.Param("id"), req.AppointmentID)
	if err != nil {
		h.writeHandoffError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"case": legalCase})
}

func (h *CaseHandler) writeHandoffError(c *gin.Context, err error) {
	var he *casehandoff.HandoffError
	if errors.As(err, &he) {
		switch he.Code {
		case casehandoff.CodeNotFound:
			utils.JSONCodedError(c, http.StatusNotFound, he.Code, he.Message)
		case casehandoff.CodeNotAuthorized:
			utils.JSONCodedError(c, http.StatusForbidden, he.Code, he.Message)
		case casehandoff.CodeNotEligible:
			utils.JSONCodedError(c, http.StatusConflict, he.Code, he.Message)
		default:
			utils.JSONCodedError(c, http.StatusInternalServerError, he.Code, he.Message)
		}
		return
	}
	h.Logger.Error("case request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
}
