// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for write-ahead
// pending-upload markers.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// CreatePendingUpload records that a blob under key is about to be written.
func CreatePendingUpload(ctx context.Context, db *gorm.DB, userID, bucket, key string, expiresAt time.Time) (*domain.PendingUpload, error) {
	p := &domain.PendingUpload{
		ID:         uuid.NewString(),
		UserID:     userID,
		Bucket:     bucket,
		StorageKey: key,
		ExpiresAt:  expiresAt,
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, dup(err)
	}
	return p, nil
}

// DeletePendingUpload removes the marker for key. A missing marker is not an error.
func DeletePendingUpload(ctx context.Context, db *gorm.DB, key string) error {
	return db.WithContext(ctx).Where("storage_key = ?", key).Delete(&domain.PendingUpload{}).Error
}

// ListExpiredPendingUploads returns up to limit markers whose expiry is at or before now.
func ListExpiredPendingUploads(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]domain.PendingUpload, error) {
	var out []domain.PendingUpload
	err := db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Order("expires_at").
		Limit(limit).
		Find(&out).Error
	return out, err
}
