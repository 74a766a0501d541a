package handlers

import (
	"net/http"

	"legalaid/middleware"
	"legalaid/models"
	"legalaid/services/notification"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the per-user notification feed consumed by the
// polling panel.
type NotificationHandler struct {
	Svc    notification.NotificationService
	Logger *zap.Logger
}

func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// ListNotificationsHandler returns the actor's notifications, newest first.
// Anonymous callers get an empty list, not an error: the panel polls before
// auth state settles and treats that as an expected empty feed.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	list, err := h.Svc.List(c.Request.Context(), actor.ID)
	if err != nil {
		if notification.IsExpectedEmpty(err) {
			c.JSON(http.StatusOK, gin.H{"notifications": []models.Notification{}})
			return
		}
		h.Logger.Error("failed to list notifications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	if list == nil {
		list = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// UnreadCountHandler returns the unread notification count, zero for
// anonymous callers.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	count, err := h.Svc.UnreadCount(c.Request.Context(), actor.ID)
	if err != nil {
		if notification.IsExpectedEmpty(err) {
			c.JSON(http.StatusOK, gin.H{"count": 0})
			return
		}
		h.Logger.Error("failed to count unread notifications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to count unread notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkReadHandler marks a single owned notification read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.Svc.MarkRead(c.Request.Context(), actor.ID, c.Param("id")); err != nil {
		h.writeNotificationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MarkAllReadHandler marks every notification of the actor read.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.Svc.MarkAllRead(c.Request.Context(), actor.ID); err != nil {
		h.writeNotificationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteNotificationHandler removes a single owned notification.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.Svc.Delete(c.Request.Context(), actor.ID, c.Param("id")); err != nil {
		h.writeNotificationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) writeNotificationError(c *gin.Context, err error) {
	switch {
	case notification.IsExpectedEmpty(err):
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
	case notification.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "notification not found", "")
	case notification.IsNotOwner(err):
		utils.JSONError(c, http.StatusForbidden, "notification belongs to another user", "")
	default:
		h.Logger.Error("notification request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
	}
}
