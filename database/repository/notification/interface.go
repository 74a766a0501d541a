package notificationRepo

import (
	"context"
	"errors"

	"legalaid/models"
)

// ErrNotFound is returned when no notification matches the given ID.
var ErrNotFound = errors.New("notification not found")

// ErrNotOwner is returned when an actor touches a notification addressed to
// someone else.
var ErrNotOwner = errors.New("notification belongs to another user")

// NotificationRepository persists per-user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	// MarkRead flips is_read for a single notification owned by userID.
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	// Delete removes a notification owned by userID.
	Delete(ctx context.Context, userID, id string) error
}
