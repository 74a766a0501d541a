package notification

import (
	"context"
	"errors"

	notificationRepo "legalaid/database/repository/notification"
	"legalaid/models"
)

// ErrUnauthenticated is returned for reads without an authenticated user.
// It is an expected condition: callers degrade to an empty feed, they do not
// surface it.
var ErrUnauthenticated = errors.New("no authenticated user")

// NotificationService owns the per-user notification feed: reads for the
// polling panel and creation hooks invoked by the scheduling engine.
type NotificationService interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, id string) error

	NotifyAppointmentCreated(ctx context.Context, appt *models.Appointment) error
	NotifyStatusChanged(ctx context.Context, appt *models.Appointment) error
}

// IsExpectedEmpty reports whether a feed read failure is one of the
// anticipated auth states that silently degrade to an empty list.
func IsExpectedEmpty(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsNotOwner reports whether the failure was an ownership violation.
func IsNotOwner(err error) bool {
	return errors.Is(err, notificationRepo.ErrNotOwner)
}

// IsNotFound reports whether the notification does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, notificationRepo.ErrNotFound)
}
