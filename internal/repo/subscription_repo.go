// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// subscription ledger.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// SubscriberRow is a subscriber listing joined with public user fields.
type SubscriberRow struct {
	SubscriptionID string    `json:"subscriptionId"`
	UserID         string    `json:"userId"`
	Username       string    `json:"username"`
	Avatar         string    `json:"avatar"`
	Tier           string    `json:"tier"`
	SubscribedAt   time.Time `json:"subscribedAt"`
}

// CreateSubscription inserts a (subscriber, channel) row; ErrDuplicate if it exists.
func CreateSubscription(ctx context.Context, db *gorm.DB, subscriberID, channelID, tier string) (*domain.Subscription, error) {
	s := &domain.Subscription{
		ID:           uuid.NewString(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		Tier:         tier,
		Notify:       true,
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, dup(err)
	}
	return s, nil
}

// GetSubscription returns the (subscriber, channel) row or ErrNotFound.
func GetSubscription(ctx context.Context, db *gorm.DB, subscriberID, channelID string) (*domain.Subscription, error) {
	var s domain.Subscription
	err := db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSubscription removes the (subscriber, channel) row or returns ErrNotFound.
func DeleteSubscription(ctx context.Context, db *gorm.DB, subscriberID, channelID string) error {
	res := db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&domain.Subscription{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSubscriptionNotify stores the notify flag.
func SetSubscriptionNotify(ctx context.Context, db *gorm.DB, id string, notify bool) error {
	return db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("id = ?", id).
		Updates(map[string]any{"notify": notify, "updated_at": time.Now().UTC()}).Error
}

// ListSubscriptions returns a subscriber's subscriptions with their channels, newest first.
func ListSubscriptions(ctx context.Context, db *gorm.DB, subscriberID string) ([]domain.Subscription, error) {
	var out []domain.Subscription
	err := db.WithContext(ctx).
		Preload("Channel").
		Where("subscriber_id = ?", subscriberID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListSubscribers returns a channel's subscribers with public user fields, newest first.
func ListSubscribers(ctx context.Context, db *gorm.DB, channelID string, offset, limit int) ([]SubscriberRow, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("channel_id = ?", channelID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []SubscriberRow
	err := db.WithContext(ctx).
		Table("subscriptions").
		Select("subscriptions.id AS subscription_id, users.id AS user_id, users.username, users.avatar, subscriptions.tier, subscriptions.created_at AS subscribed_at").
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&out).Error
	return out, total, err
}
