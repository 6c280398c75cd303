// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for per-user
// notifications.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// CreateNotification inserts n as unread, assigning a UUID when ID is empty.
func CreateNotification(ctx context.Context, db *gorm.DB, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.Read = false
	return db.WithContext(ctx).Create(n).Error
}

// ListNotifications returns a page of a user's notifications, newest first.
func ListNotifications(ctx context.Context, db *gorm.DB, userID string, unreadOnly bool, offset, limit int) ([]domain.Notification, error) {
	q := db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var out []domain.Notification
	err := q.Order("created_at desc").Order("id").Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

// CountNotifications counts a user's notifications, optionally unread only.
func CountNotifications(ctx context.Context, db *gorm.DB, userID string, unreadOnly bool) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// NotificationsStats returns the total count and newest created_at of a
// user's notifications together with the unread count, used for weak ETags.
func NotificationsStats(ctx context.Context, db *gorm.DB, userID string) (count, unread int64, latest *time.Time, err error) {
	if count, err = CountNotifications(ctx, db, userID, false); err != nil || count == 0 {
		return count, 0, nil, err
	}
	if unread, err = CountNotifications(ctx, db, userID, true); err != nil {
		return 0, 0, nil, err
	}
	var row struct {
		CreatedAt time.Time
	}
	err = db.WithContext(ctx).Model(&domain.Notification{}).
		Select("created_at").Where("user_id = ?", userID).
		Order("created_at DESC").Limit(1).Scan(&row).Error
	if err != nil {
		return 0, 0, nil, err
	}
	return count, unread, &row.CreatedAt, nil
}

// GetNotification returns a notification owned by userID.
func GetNotification(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Notification, error) {
	var n domain.Notification
	if err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkNotificationRead sets read=true on a notification owned by userID.
func MarkNotificationRead(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllNotificationsRead marks every unread notification of userID read
// and returns how many changed.
func MarkAllNotificationsRead(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

// DeleteNotification removes a notification owned by userID.
func DeleteNotification(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearNotifications removes all of a user's notifications and returns the count.
func ClearNotifications(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	res := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Notification{})
	return res.RowsAffected, res.Error
}
