// Package services – NotificationService
//
// Notifications are written by other services as a side effect (new
// subscriber, comment, reply) and read, marked, or deleted by their owner.
// Fan-out is best-effort: Notify never fails the caller's operation.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/events"
	"github.com/tbourn/go-video-backend/internal/repo"
)

// NotifyOptions carries the optional references of a notification.
type NotifyOptions struct {
	RelatedUserID  string
	RelatedVideoID string
	ActionURL      string
}

// Notifier creates notifications on behalf of other services.
type Notifier interface {
	Notify(ctx context.Context, userID, typ, message string, opts NotifyOptions)
}

// NotificationPage is one page of a user's notifications.
type NotificationPage struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
	TotalCount    int64                 `json:"totalCount"`
}

// NotificationService stores notifications and publishes them as events.
type NotificationService struct {
	DB     *gorm.DB
	Events events.Publisher
}

// Notify writes one unread notification for userID and publishes it. Every
// failure is logged and swallowed.
func (s *NotificationService) Notify(ctx context.Context, userID, typ, message string, opts NotifyOptions) {
	lg := logFrom(ctx)
	if !domain.IsNotificationType(typ) {
		lg.Warn().Str("type", typ).Msg("notify: unknown notification type")
		return
	}
	n := &domain.Notification{
		UserID:    userID,
		Type:      typ,
		Message:   message,
		ActionURL: opts.ActionURL,
	}
	if opts.RelatedUserID != "" {
		n.RelatedUserID = &opts.RelatedUserID
	}
	if opts.RelatedVideoID != "" {
		n.RelatedVideoID = &opts.RelatedVideoID
	}
	if err := repo.CreateNotification(ctx, s.DB, n); err != nil {
		lg.Error().Err(err).Str("user_id", userID).Str("type", typ).Msg("notify: store notification")
		return
	}
	if s.Events == nil {
		return
	}
	ev := events.NotificationEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Type:           n.Type,
		Message:        n.Message,
		RelatedUserID:  n.RelatedUserID,
		RelatedVideoID: n.RelatedVideoID,
		ActionURL:      n.ActionURL,
		Timestamp:      n.CreatedAt.Unix(),
	}
	if err := s.Events.PublishNotification(ctx, ev); err != nil {
		lg.Warn().Err(err).Str("notification_id", n.ID).Msg("notify: publish event")
	}
}

// List returns a page of notifications, newest first, with the unread and
// total counts of the whole collection.
func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool, limit, skip int) (*NotificationPage, error) {
	tr := otel.Tracer("services/NotificationService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Bool("unread_only", unreadOnly),
			attribute.Int("limit", limit),
			attribute.Int("skip", skip),
		),
	)
	defer span.End()

	items, err := repo.ListNotifications(ctx, s.DB, userID, unreadOnly, skip, limit)
	if err != nil {
		return nil, err
	}
	unread, err := repo.CountNotifications(ctx, s.DB, userID, true)
	if err != nil {
		return nil, err
	}
	total, err := repo.CountNotifications(ctx, s.DB, userID, false)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return &NotificationPage{Notifications: items, UnreadCount: unread, TotalCount: total}, nil
}

// Stats returns the total, unread count and latest creation time, used to
// derive a weak ETag.
func (s *NotificationService) Stats(ctx context.Context, userID string) (int64, int64, *time.Time, error) {
	return repo.NotificationsStats(ctx, s.DB, userID)
}

// UnreadCount returns how many notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return repo.CountNotifications(ctx, s.DB, userID, true)
}

// MarkRead marks one notification read and returns it.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) (*domain.Notification, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := repo.MarkNotificationRead(ctx, s.DB, id, userID); err != nil {
		return nil, orNotFound(err, ErrNotificationNotFound)
	}
	n, err := repo.GetNotification(ctx, s.DB, id, userID)
	if err != nil {
		return nil, orNotFound(err, ErrNotificationNotFound)
	}
	return n, nil
}

// MarkAllRead marks every unread notification read and returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return repo.MarkAllNotificationsRead(ctx, s.DB, userID)
}

// Delete removes one notification.
func (s *NotificationService) Delete(ctx context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	err := repo.DeleteNotification(ctx, s.DB, id, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

// Clear removes every notification of the user and returns how many were deleted.
func (s *NotificationService) Clear(ctx context.Context, userID string) (int64, error) {
	return repo.ClearNotifications(ctx, s.DB, userID)
}
