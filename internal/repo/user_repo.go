// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a row is not found, functions return gorm.ErrRecordNotFound
//     (also exported as ErrNotFound).
//   - Unique violations on insert are reported as ErrDuplicate.
//   - Other DB errors are propagated unchanged.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// CreateUser inserts u, assigning a UUID when ID is empty.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return dup(db.WithContext(ctx).Create(u).Error)
}

// GetUser fetches a user by ID.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByLogin fetches a user whose email or username equals login.
func GetUserByLogin(ctx context.Context, db *gorm.DB, login string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("email = ? OR username = ?", login, login).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserTaken reports whether username or email is already registered.
func UserTaken(ctx context.Context, db *gorm.DB, username, email string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	return n > 0, err
}

// UpdateUserAvatar sets the avatar URL for a user.
func UpdateUserAvatar(ctx context.Context, db *gorm.DB, id, avatar string) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"avatar": avatar, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachChannel records channelID on the user and sets has_own_channel. The
// update only applies while has_own_channel is false, so it can succeed at
// most once per user; otherwise ErrDuplicate is returned.
func AttachChannel(ctx context.Context, db *gorm.DB, userID, channelID string) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ? AND has_own_channel = ?", userID, false).
		Updates(map[string]any{
			"channel_id":      channelID,
			"has_own_channel": true,
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicate
	}
	return nil
}
