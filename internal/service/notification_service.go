package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type notificationStore interface {
	NotificationsFor(ctx context.Context, userID string) ([]models.Notification, error)
	UnreadNotificationCount(ctx context.Context, userID string) (int, error)
	AddNotification(ctx context.Context, n models.Notification) (*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, id string) error
}

// SendNotificationRequest is the payload for sending a notification. UserID
// accepts the "all" audience sentinel.
type SendNotificationRequest struct {
	UserID  string                  `json:"userId" validate:"required"`
	Title   string                  `json:"title" validate:"required"`
	Message string                  `json:"message" validate:"required"`
	Type    models.NotificationType `json:"type" validate:"required,oneof=info alert success"`
}

// NotificationService manages per-user and broadcast notices. The unread
// count is cached in redis when a client is available; a broadcast write
// cannot name every affected user, so the TTL bounds staleness instead of
// precise invalidation.
type NotificationService struct {
	store     notificationStore
	cache     *redis.Client
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService constructs a NotificationService. cache may be nil.
func NewNotificationService(store notificationStore, cache *redis.Client, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{store: store, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

// ListFor returns the user's notifications plus broadcasts, newest first.
func (s *NotificationService) ListFor(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.store.NotificationsFor(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notifications")
	}
	return notifications, nil
}

// UnreadCount returns the unread count, served from cache when warm.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	key := unreadCountKey(userID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count, nil
			}
		}
	}

	count, err := s.store.UnreadNotificationCount(ctx, userID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count notifications")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.Itoa(count), s.cacheTTL).Err(); err != nil {
			s.logger.Warn("unread count cache write failed", zap.Error(err))
		}
	}
	return count, nil
}

// Send validates and stores a notification, then drops the recipient's
// cached count.
func (s *NotificationService) Send(ctx context.Context, req SendNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}

	created, err := s.store.AddNotification(ctx, models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send notification")
	}

	s.invalidateCount(ctx, req.UserID)
	return created, nil
}

// MarkRead marks one notification read for its owner.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.store.MarkNotificationRead(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark notification read")
	}
	s.invalidateCount(ctx, userID)
	return nil
}

// MarkAllRead marks everything visible to the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.store.MarkAllNotificationsRead(ctx, userID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark notifications read")
	}
	s.invalidateCount(ctx, userID)
	return nil
}

// Delete removes one notification.
func (s *NotificationService) Delete(ctx context.Context, id, userID string) error {
	if err := s.store.DeleteNotification(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete notification")
	}
	s.invalidateCount(ctx, userID)
	return nil
}

func (s *NotificationService) invalidateCount(ctx context.Context, userID string) {
	if s.cache == nil || userID == models.NotificationAudienceAll {
		return
	}
	if err := s.cache.Del(ctx, unreadCountKey(userID)).Err(); err != nil {
		s.logger.Warn("unread count cache invalidation failed", zap.Error(err))
	}
}

func unreadCountKey(userID string) string {
	return fmt.Sprintf("portal:notifications:unread:%s", userID)
}
