// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Channel
// model, including atomic maintenance of its denormalized counters.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// CreateChannel inserts ch. A second channel for the same user (or a taken
// handle) yields ErrDuplicate.
func CreateChannel(ctx context.Context, db *gorm.DB, ch *domain.Channel) error {
	if ch.ID == "" {
		ch.ID = uuid.NewString()
	}
	return dup(db.WithContext(ctx).Create(ch).Error)
}

// GetChannel fetches a channel by ID.
func GetChannel(ctx context.Context, db *gorm.DB, id string) (*domain.Channel, error) {
	var ch domain.Channel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// GetChannelByHandle fetches a channel by its handle.
func GetChannelByHandle(ctx context.Context, db *gorm.DB, handle string) (*domain.Channel, error) {
	var ch domain.Channel
	if err := db.WithContext(ctx).Where("handle = ?", handle).First(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// GetChannelByUser fetches the channel owned by userID.
func GetChannelByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Channel, error) {
	var ch domain.Channel
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// AdjustSubscribers atomically adds delta to subscribers_count. Decrements
// never take the counter below zero.
func AdjustSubscribers(ctx context.Context, db *gorm.DB, channelID string, delta int) error {
	return adjustCounter(ctx, db, &domain.Channel{}, channelID, "subscribers_count", delta)
}

// AdjustVideosCount atomically adds delta to videos_count on the channel owned by userID.
func AdjustVideosCount(ctx context.Context, db *gorm.DB, userID string, delta int) error {
	q := db.WithContext(ctx).Model(&domain.Channel{}).Where("user_id = ?", userID)
	if delta < 0 {
		q = q.Where("videos_count >= ?", -delta)
	}
	return q.UpdateColumns(map[string]any{
		"videos_count": gorm.Expr("videos_count + ?", delta),
		"updated_at":   db.NowFunc(),
	}).Error
}

// SearchChannels returns channels whose name or handle contains q
// (case-insensitive), ordered by subscriber count descending.
func SearchChannels(ctx context.Context, db *gorm.DB, q string, offset, limit int) ([]domain.Channel, int64, error) {
	pattern := likePattern(q)
	base := db.WithContext(ctx).
		Model(&domain.Channel{}).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(handle) LIKE ? ESCAPE '\\'", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Channel
	err := base.Order("subscribers_count desc").Order("created_at desc").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

// adjustCounter applies col = col + delta to the row with the given id and
// bumps updated_at, which feed ETags are derived from. Negative deltas are
// guarded so the column stays non-negative; a guarded miss is not an error.
func adjustCounter(ctx context.Context, db *gorm.DB, model any, id, col string, delta int) error {
	q := db.WithContext(ctx).Model(model).Where("id = ?", id)
	if delta < 0 {
		q = q.Where(col+" >= ?", -delta)
	}
	return q.UpdateColumns(map[string]any{
		col:          gorm.Expr(col+" + ?", delta),
		"updated_at": db.NowFunc(),
	}).Error
}
