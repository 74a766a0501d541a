package handlers

import (
	"net/http"

	"legalaid/middleware"
	"legalaid/models"
	"legalaid/services/scheduling"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking and lifecycle endpoints.
type AppointmentHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

func NewAppointmentHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

// CreateAppointmentHandler creates a PENDING appointment from a selected
// slot. A soft slot clash answers 409 with code SLOT_CONFLICT and the
// conflict description; the client re-submits with force=true after the user
// confirms the override.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var req scheduling.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, scheduling.CodeValidation, "invalid input: "+err.Error())
		return
	}

	actor := middleware.ActorFrom(c)
	appt, err := h.Svc.RequestBooking(c.Request.Context(), actor, req)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// ListMyAppointmentsHandler returns appointments where the authenticated
// actor is requester or provider.
func (h *AppointmentHandler) ListMyAppointmentsHandler(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	appts, err := h.Svc.ListMine(c.Request.Context(), actor)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointmentStatusHandler performs a provider-side status transition.
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, scheduling.CodeValidation, "invalid input: "+err.Error())
		return
	}

	actor := middleware.ActorFrom(c)
	appt, err := h.Svc.UpdateStatus(c.Request.Context(), actor, id, input.Status)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (h *AppointmentHandler) writeSchedulingError(c *gin.Context, err error) {
	code := scheduling.CodeOf(err)
	switch {
	case scheduling.IsValidation(err):
		utils.JSONCodedError(c, http.StatusBadRequest, code, err.Error())
	case scheduling.IsConflict(err):
		utils.JSONCodedError(c, http.StatusConflict, code, err.Error())
	case scheduling.IsAuthorization(err):
		utils.JSONCodedError(c, http.StatusForbidden, code, err.Error())
	case scheduling.IsNotFound(err):
		utils.JSONCodedError(c, http.StatusNotFound, code, err.Error())
	default:
		h.Logger.Error("scheduling request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
	}
}
