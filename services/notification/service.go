package notification

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	notificationRepo "legalaid/database/repository/notification"
	"legalaid/models"
	"legalaid/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const unreadCacheTTL = 60 * time.Second

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
	// Cache is optional; when set, unread counts are served from Redis
	// between writes.
	Cache *redis.Client
}

func (s *DefaultNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrUnauthenticated
	}

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, unreadCacheKey(userID)).Result(); err == nil {
			if n, convErr := strconv.ParseInt(cached, 10, 64); convErr == nil {
				return n, nil
			}
		}
	}

	count, err := s.Repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, unreadCacheKey(userID), count, unreadCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache unread count",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return count, nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := s.Repo.MarkRead(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := s.Repo.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

func (s *DefaultNotificationService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

// NotifyAppointmentCreated records an APPOINTMENT notification for the
// provider who received the request.
func (s *DefaultNotificationService) NotifyAppointmentCreated(ctx context.Context, appt *models.Appointment) error {
	status := appt.Status
	n := &models.Notification{
		ID:                uuid.New().String(),
		UserID:            appt.ProviderID,
		Type:              models.NotificationAppointment,
		Message:           fmt.Sprintf("New %s request on %s", strings.ToLower(appt.Type), appt.StartTime.Format("Jan 2 at 15:04")),
		ReferenceID:       appt.ID,
		AppointmentStatus: &status,
		CreatedAt:         time.Now(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return err
	}
	s.invalidateUnread(ctx, appt.ProviderID)
	return nil
}

// NotifyStatusChanged records an APPOINTMENT notification for the requester,
// with the new status denormalized onto the notification.
func (s *DefaultNotificationService) NotifyStatusChanged(ctx context.Context, appt *models.Appointment) error {
	status := appt.Status
	n := &models.Notification{
		ID:                uuid.New().String(),
		UserID:            appt.RequesterID,
		Type:              models.NotificationAppointment,
		Message:           fmt.Sprintf("Your appointment on %s was %s", appt.StartTime.Format("Jan 2 at 15:04"), strings.ToLower(string(appt.Status))),
		ReferenceID:       appt.ID,
		AppointmentStatus: &status,
		CreatedAt:         time.Now(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return err
	}
	s.invalidateUnread(ctx, appt.RequesterID)
	return nil
}

func (s *DefaultNotificationService) invalidateUnread(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, unreadCacheKey(userID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate unread count cache",
			zap.String("userID", userID), zap.Error(err))
	}
}

func unreadCacheKey(userID string) string {
	return "notifications:unread:" + userID
}
