package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	notificationRepo "legalaid/database/repository/notification"
	"legalaid/models"
	"legalaid/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeNotificationService serves canned results keyed per method.
type fakeNotificationService struct {
	list        []models.Notification
	listErr     error
	unread      int64
	unreadErr   error
	markReadErr error
	deleteErr   error
}

func (f *fakeNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	if userID == "" {
		return nil, notification.ErrUnauthenticated
	}
	return f.list, f.listErr
}

func (f *fakeNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, notification.ErrUnauthenticated
	}
	return f.unread, f.unreadErr
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return f.markReadErr
}

func (f *fakeNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeNotificationService) Delete(ctx context.Context, userID, id string) error {
	return f.deleteErr
}

func (f *fakeNotificationService) NotifyAppointmentCreated(ctx context.Context, appt *models.Appointment) error {
	return nil
}

func (f *fakeNotificationService) NotifyStatusChanged(ctx context.Context, appt *models.Appointment) error {
	return nil
}

func notificationRouter(svc notification.NotificationService, actor models.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNotificationHandler(svc, zap.NewNop())
	r.GET("/api/notifications", asActor(actor), h.ListNotificationsHandler)
	r.GET("/api/notifications/unread-count", asActor(actor), h.UnreadCountHandler)
	r.PATCH("/api/notifications/:id/read", asActor(actor), h.MarkReadHandler)
	r.DELETE("/api/notifications/:id", asActor(actor), h.DeleteNotificationHandler)
	return r
}

func TestListNotifications(t *testing.T) {
	svc := &fakeNotificationService{
		list: []models.Notification{{ID: "n1", UserID: "lawyer-1", Type: models.NotificationAppointment}},
	}
	lawyer := models.Actor{ID: "lawyer-1", Role: models.RoleLawyer}
	r := notificationRouter(svc, lawyer)

	w := doJSON(t, r, http.MethodGet, "/api/notifications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].ID != "n1" {
		t.Errorf("body = %+v", resp)
	}
}

// An anonymous poll answers 200 with an empty feed, never 401: the panel
// treats a logged-out session as an empty panel.
func TestListNotificationsAnonymousIsEmpty(t *testing.T) {
	svc := &fakeNotificationService{
		list: []models.Notification{{ID: "n1"}},
	}
	r := notificationRouter(svc, models.Actor{})

	w := doJSON(t, r, http.MethodGet, "/api/notifications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Notifications == nil || len(resp.Notifications) != 0 {
		t.Errorf("notifications = %v, want empty array", resp.Notifications)
	}

	w = doJSON(t, r, http.MethodGet, "/api/notifications/unread-count", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unread-count status = %d, want 200", w.Code)
	}
	var countResp struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &countResp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if countResp.Count != 0 {
		t.Errorf("count = %d, want 0", countResp.Count)
	}
}

func TestMarkReadErrorMapping(t *testing.T) {
	lawyer := models.Actor{ID: "lawyer-1", Role: models.RoleLawyer}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ok", nil, http.StatusOK},
		{"missing", notificationRepo.ErrNotFound, http.StatusNotFound},
		{"not owner", notificationRepo.ErrNotOwner, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeNotificationService{markReadErr: tt.err}
			r := notificationRouter(svc, lawyer)

			w := doJSON(t, r, http.MethodPatch, "/api/notifications/n1/read", nil)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestDeleteNotificationErrorMapping(t *testing.T) {
	lawyer := models.Actor{ID: "lawyer-1", Role: models.RoleLawyer}

	svc := &fakeNotificationService{deleteErr: notificationRepo.ErrNotOwner}
	r := notificationRouter(svc, lawyer)
	if w := doJSON(t, r, http.MethodDelete, "/api/notifications/n1", nil); w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
