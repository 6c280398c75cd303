// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for a user's
// liked-videos collection.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// FindLikedVideos returns the liked-videos header for userID or ErrNotFound.
func FindLikedVideos(ctx context.Context, db *gorm.DB, userID string) (*domain.LikedVideos, error) {
	var l domain.LikedVideos
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// GetOrCreateLikedVideos returns the user's liked-videos header, creating it lazily.
func GetOrCreateLikedVideos(ctx context.Context, db *gorm.DB, userID string) (*domain.LikedVideos, error) {
	l, err := FindLikedVideos(ctx, db, userID)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	l = &domain.LikedVideos{ID: uuid.NewString(), UserID: userID}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		if IsDuplicate(err) {
			return FindLikedVideos(ctx, db, userID)
		}
		return nil, err
	}
	return l, nil
}

// CreateLikedEntry adds videoID to the list; ErrDuplicate if already liked.
func CreateLikedEntry(ctx context.Context, db *gorm.DB, listID, videoID string, at time.Time) (*domain.LikedVideoEntry, error) {
	e := &domain.LikedVideoEntry{
		ID:            uuid.NewString(),
		LikedVideosID: listID,
		VideoID:       videoID,
		LikedAt:       at,
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, dup(err)
	}
	return e, nil
}

// DeleteLikedEntry removes videoID from the list or returns ErrNotFound.
func DeleteLikedEntry(ctx context.Context, db *gorm.DB, listID, videoID string) error {
	res := db.WithContext(ctx).
		Where("liked_videos_id = ? AND video_id = ?", listID, videoID).
		Delete(&domain.LikedVideoEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLikedEntries returns the entries of a list in storage order. Callers
// sort by LikedAt.
func ListLikedEntries(ctx context.Context, db *gorm.DB, listID string) ([]domain.LikedVideoEntry, error) {
	var out []domain.LikedVideoEntry
	err := db.WithContext(ctx).Where("liked_videos_id = ?", listID).Find(&out).Error
	return out, err
}

// HasLiked reports whether userID has videoID in their liked list.
func HasLiked(ctx context.Context, db *gorm.DB, userID, videoID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.LikedVideoEntry{}).
		Joins("JOIN liked_videos ON liked_videos.id = liked_video_entries.liked_videos_id").
		Where("liked_videos.user_id = ? AND liked_video_entries.video_id = ?", userID, videoID).
		Count(&n).Error
	return n > 0, err
}
