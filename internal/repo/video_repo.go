// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Video model:
// creation, lifecycle transitions, public feeds, counters, and search.
package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// FeedFilter narrows a public feed by duration (seconds, inclusive bounds).
// Nil bounds are open.
type FeedFilter struct {
	MinDuration *int
	MaxDuration *int
}

// VideoSearch describes a video search over completed videos.
type VideoSearch struct {
	Terms    []string // each term matches title, description, or hashtags
	Category string
	MinDur   *int
	MaxDur   *int
	OrderBy  string // SQL order clause
	Offset   int
	Limit    int
}

// CreateVideo inserts v. Hashtags and status invariants are applied by the
// model's BeforeCreate hook.
func CreateVideo(ctx context.Context, db *gorm.DB, v *domain.Video) error {
	return dup(db.WithContext(ctx).Create(v).Error)
}

// GetVideo fetches a video by ID regardless of status.
func GetVideo(ctx context.Context, db *gorm.DB, id string) (*domain.Video, error) {
	var v domain.Video
	if err := db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// GetCompletedVideo fetches a publicly visible video by ID.
func GetCompletedVideo(ctx context.Context, db *gorm.DB, id string) (*domain.Video, error) {
	var v domain.Video
	err := db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.StatusCompleted).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CompleteVideo moves a temporary video owned by userID to completed and
// clears its expiry in one conditional UPDATE, so ownership and state are
// checked atomically with the write. ErrNotFound covers a missing video, a
// different owner, and a video that is no longer temporary.
func CompleteVideo(ctx context.Context, db *gorm.DB, id, userID string, now time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Video{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, domain.StatusTemporary).
		Updates(map[string]any{
			"status":     domain.StatusCompleted,
			"expires_at": gorm.Expr("NULL"),
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFeed returns completed videos matching f, newest first, and the total.
func ListFeed(ctx context.Context, db *gorm.DB, f FeedFilter, offset, limit int) ([]domain.Video, int64, error) {
	base := feedQuery(db.WithContext(ctx), f)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Video
	err := base.Order("created_at desc").Order("id").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

// FeedStats returns the row count and latest updated_at of a feed, used for
// weak ETags on public listings.
func FeedStats(ctx context.Context, db *gorm.DB, f FeedFilter) (count int64, maxUpdatedAt *time.Time, err error) {
	q := feedQuery(db.WithContext(ctx), f)
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}
	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

func feedQuery(db *gorm.DB, f FeedFilter) *gorm.DB {
	q := db.Model(&domain.Video{}).Where("status = ?", domain.StatusCompleted)
	if f.MinDuration != nil {
		q = q.Where("duration >= ?", *f.MinDuration)
	}
	if f.MaxDuration != nil {
		q = q.Where("duration <= ?", *f.MaxDuration)
	}
	return q
}

// ListUserVideos returns every video owned by userID, any status, newest first.
func ListUserVideos(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Video, int64, error) {
	base := db.WithContext(ctx).Model(&domain.Video{}).Where("user_id = ?", userID)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Video
	err := base.Order("created_at desc").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

// ListExpiredTemporary returns up to limit temporary videos whose expiry is
// at or before now, oldest expiry first.
func ListExpiredTemporary(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]domain.Video, error) {
	var out []domain.Video
	err := db.WithContext(ctx).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", domain.StatusTemporary, now).
		Order("expires_at").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteTemporaryVideo removes a video only while it is still temporary, so
// a video completed concurrently with a sweep survives.
func DeleteTemporaryVideo(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.StatusTemporary).
		Delete(&domain.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StorageKeyReferenced reports whether any video row points at key.
func StorageKeyReferenced(ctx context.Context, db *gorm.DB, key string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Video{}).Where("storage_key = ?", key).Count(&n).Error
	return n > 0, err
}

// GetVideosByIDs loads the videos with the given IDs, keyed by ID. IDs with
// no row are absent from the map.
func GetVideosByIDs(ctx context.Context, db *gorm.DB, ids []string) (map[string]domain.Video, error) {
	out := make(map[string]domain.Video, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []domain.Video
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, v := range rows {
		out[v.ID] = v
	}
	return out, nil
}

// IncrementViews adds one view and returns the new total.
func IncrementViews(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	if err := adjustCounter(ctx, db, &domain.Video{}, id, "views", 1); err != nil {
		return 0, err
	}
	var row struct{ Views int64 }
	err := db.WithContext(ctx).Model(&domain.Video{}).Select("views").Where("id = ?", id).Scan(&row).Error
	return row.Views, err
}

// AdjustLikes atomically adds delta to likes, never going below zero.
func AdjustLikes(ctx context.Context, db *gorm.DB, id string, delta int) error {
	return adjustCounter(ctx, db, &domain.Video{}, id, "likes", delta)
}

// SearchVideos runs s against completed videos and returns the page and total.
func SearchVideos(ctx context.Context, db *gorm.DB, s VideoSearch) ([]domain.Video, int64, error) {
	q := db.WithContext(ctx).Model(&domain.Video{}).Where("status = ?", domain.StatusCompleted)
	if len(s.Terms) > 0 {
		conds := make([]string, 0, len(s.Terms))
		args := make([]any, 0, 3*len(s.Terms))
		for _, term := range s.Terms {
			p := likePattern(term)
			conds = append(conds, "(LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' OR LOWER(hashtags) LIKE ? ESCAPE '\\')")
			args = append(args, p, p, p)
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}
	if s.Category != "" {
		q = q.Where("category = ?", s.Category)
	}
	if s.MinDur != nil {
		q = q.Where("duration >= ?", *s.MinDur)
	}
	if s.MaxDur != nil {
		q = q.Where("duration <= ?", *s.MaxDur)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	order := s.OrderBy
	if order == "" {
		order = "created_at desc"
	}
	var out []domain.Video
	err := q.Order(order).Order("id").Offset(s.Offset).Limit(s.Limit).Find(&out).Error
	return out, total, err
}

// likePattern lower-cases s, escapes LIKE wildcards, and wraps it in '%'.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}
