package handlers

import (
	"net/http"
	"time"

	"legalaid/middleware"
	"legalaid/models"
	"legalaid/services/scheduling"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
)

// ResolveAvailabilityHandler computes the slot grid for a provider and date
// as seen by the authenticated requester. The projection is recomputed on
// every call; nothing is cached between navigations.
func (h *AppointmentHandler) ResolveAvailabilityHandler(c *gin.Context) {
	providerID := c.Query("providerId")
	providerRole := models.Role(c.Query("providerRole"))
	dateStr := c.Query("date")

	if providerID == "" || dateStr == "" {
		utils.JSONCodedError(c, http.StatusBadRequest, scheduling.CodeValidation, "providerId and date are required")
		return
	}
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.JSONCodedError(c, http.StatusBadRequest, scheduling.CodeValidation, "date must be formatted as YYYY-MM-DD")
		return
	}

	actor := middleware.ActorFrom(c)
	slots, err := h.Svc.ResolveAvailability(c.Request.Context(), providerID, providerRole, day, actor.ID, actor.Role)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
