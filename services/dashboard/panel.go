package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"legalaid/models"
	"legalaid/services/notification"
)

// NotificationFeed is the slice of the notification service the panel reads.
type NotificationFeed interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

// NotificationPanel holds a user's local copy of the notification feed. It is
// refreshed by the poller and by appointment-updated broadcasts, and patched
// optimistically when the user acts on a notification in place. Authoritative
// fetches replace the local copy wholesale; provisional patches are never
// merged field by field into server state.
type NotificationPanel struct {
	Feed   NotificationFeed
	UserID string

	mu            sync.Mutex
	notifications []models.Notification
	unread        int64
	// fetchedAt orders authoritative responses so that an in-flight fetch
	// resolving late cannot clobber a newer one.
	fetchedAt time.Time
}

func (p *NotificationPanel) Name() string { return "notification-panel" }

// Refresh replaces the local copy with the store's view. Expected
// unauthenticated or validation failures silently reset the panel to empty
// rather than surfacing an error.
func (p *NotificationPanel) Refresh(ctx context.Context) error {
	started := time.Now()

	list, err := p.Feed.List(ctx, p.UserID)
	if err != nil {
		if notification.IsExpectedEmpty(err) {
			p.reset(started)
			return nil
		}
		return fmt.Errorf("failed to fetch notifications: %w", err)
	}
	unread, err := p.Feed.UnreadCount(ctx, p.UserID)
	if err != nil {
		if notification.IsExpectedEmpty(err) {
			p.reset(started)
			return nil
		}
		return fmt.Errorf("failed to fetch unread count: %w", err)
	}

	// Dropped, not applied, when the view was unmounted mid-flight.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if started.Before(p.fetchedAt) {
		return nil // a newer authoritative response already landed
	}
	p.notifications = list
	p.unread = unread
	p.fetchedAt = started
	return nil
}

// ApplyLocalStatus patches the panel's own copy after the user confirms or
// rejects an appointment from within it, ahead of the broadcast-triggered
// refetch. The next authoritative fetch reconciles with the store.
func (p *NotificationPanel) ApplyLocalStatus(appointmentID string, status models.AppointmentStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.notifications {
		n := &p.notifications[i]
		if n.Type != models.NotificationAppointment || n.ReferenceID != appointmentID {
			continue
		}
		s := status
		n.AppointmentStatus = &s
		n.Message = fmt.Sprintf("Appointment %s", strings.ToLower(string(status)))
	}
}

// Snapshot returns a copy of the current local state.
func (p *NotificationPanel) Snapshot() ([]models.Notification, int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.Notification, len(p.notifications))
	copy(out, p.notifications)
	return out, p.unread
}

func (p *NotificationPanel) reset(at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if at.Before(p.fetchedAt) {
		return
	}
	p.notifications = nil
	p.unread = 0
	p.fetchedAt = at
}
