// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for watch history:
// a per-user History header plus HistoryEntry rows ordered by a monotonically
// increasing sequence number (higher = more recent).
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// FindHistory returns the history header for userID or ErrNotFound.
func FindHistory(ctx context.Context, db *gorm.DB, userID string) (*domain.History, error) {
	var h domain.History
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// GetOrCreateHistory returns the user's history header, creating it lazily.
// A concurrent creator winning the unique index is tolerated by re-reading.
func GetOrCreateHistory(ctx context.Context, db *gorm.DB, userID string) (*domain.History, error) {
	h, err := FindHistory(ctx, db, userID)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	h = &domain.History{ID: uuid.NewString(), UserID: userID}
	if err := db.WithContext(ctx).Create(h).Error; err != nil {
		if IsDuplicate(err) {
			return FindHistory(ctx, db, userID)
		}
		return nil, err
	}
	return h, nil
}

// PushHistoryEntry moves videoID to the head of the history: any existing
// entry for the video is removed and a new one is inserted with the next
// sequence number. Call inside a transaction.
func PushHistoryEntry(ctx context.Context, db *gorm.DB, historyID, videoID string, at time.Time) (*domain.HistoryEntry, error) {
	tx := db.WithContext(ctx)
	if err := tx.Where("history_id = ? AND video_id = ?", historyID, videoID).
		Delete(&domain.HistoryEntry{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&domain.History{}).
		Where("id = ?", historyID).
		Updates(map[string]any{"next_seq": gorm.Expr("next_seq + 1"), "updated_at": at}).Error; err != nil {
		return nil, err
	}
	var row struct{ NextSeq int64 }
	if err := tx.Model(&domain.History{}).Select("next_seq").Where("id = ?", historyID).Scan(&row).Error; err != nil {
		return nil, err
	}
	e := &domain.HistoryEntry{
		ID:        uuid.NewString(),
		HistoryID: historyID,
		VideoID:   videoID,
		Seq:       row.NextSeq,
		WatchedAt: at,
	}
	if err := tx.Create(e).Error; err != nil {
		return nil, dup(err)
	}
	return e, nil
}

// TrimHistory keeps the max most recent entries and deletes the rest,
// returning how many were evicted.
func TrimHistory(ctx context.Context, db *gorm.DB, historyID string, max int) (int64, error) {
	tx := db.WithContext(ctx)
	var cutoff []int64
	if err := tx.Model(&domain.HistoryEntry{}).
		Where("history_id = ?", historyID).
		Order("seq desc").
		Offset(max - 1).
		Limit(1).
		Pluck("seq", &cutoff).Error; err != nil {
		return 0, err
	}
	if len(cutoff) == 0 {
		return 0, nil
	}
	res := tx.Where("history_id = ? AND seq < ?", historyID, cutoff[0]).Delete(&domain.HistoryEntry{})
	return res.RowsAffected, res.Error
}

// ListHistoryEntries returns every entry, most recent first.
func ListHistoryEntries(ctx context.Context, db *gorm.DB, historyID string) ([]domain.HistoryEntry, error) {
	var out []domain.HistoryEntry
	err := db.WithContext(ctx).
		Where("history_id = ?", historyID).
		Order("seq desc").
		Find(&out).Error
	return out, err
}

// DeleteHistoryEntry removes videoID from the history or returns ErrNotFound.
func DeleteHistoryEntry(ctx context.Context, db *gorm.DB, historyID, videoID string) error {
	res := db.WithContext(ctx).
		Where("history_id = ? AND video_id = ?", historyID, videoID).
		Delete(&domain.HistoryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearHistory removes every entry of the history.
func ClearHistory(ctx context.Context, db *gorm.DB, historyID string) (int64, error) {
	res := db.WithContext(ctx).Where("history_id = ?", historyID).Delete(&domain.HistoryEntry{})
	return res.RowsAffected, res.Error
}
