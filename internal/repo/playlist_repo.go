// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for playlists and
// their positioned entries.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// CreatePlaylist inserts p, assigning a UUID when ID is empty.
func CreatePlaylist(ctx context.Context, db *gorm.DB, p *domain.Playlist) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return db.WithContext(ctx).Create(p).Error
}

// GetPlaylist fetches a playlist by ID.
func GetPlaylist(ctx context.Context, db *gorm.DB, id string) (*domain.Playlist, error) {
	var p domain.Playlist
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListUserPlaylists returns playlists owned by userID, newest first. When
// publicOnly is set only public playlists are returned.
func ListUserPlaylists(ctx context.Context, db *gorm.DB, userID string, publicOnly bool) ([]domain.Playlist, error) {
	q := db.WithContext(ctx).Where("user_id = ?", userID)
	if publicOnly {
		q = q.Where("visibility = ?", domain.VisibilityPublic)
	}
	var out []domain.Playlist
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

// UpdatePlaylist applies fields to the playlist.
func UpdatePlaylist(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now().UTC()
	res := db.WithContext(ctx).Model(&domain.Playlist{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlaylist removes the playlist and its entries.
func DeletePlaylist(ctx context.Context, db *gorm.DB, id string) error {
	tx := db.WithContext(ctx)
	if err := tx.Where("playlist_id = ?", id).Delete(&domain.PlaylistEntry{}).Error; err != nil {
		return err
	}
	res := tx.Where("id = ?", id).Delete(&domain.Playlist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPlaylistEntries returns entries ordered by position.
func ListPlaylistEntries(ctx context.Context, db *gorm.DB, playlistID string) ([]domain.PlaylistEntry, error) {
	var out []domain.PlaylistEntry
	err := db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("position").
		Find(&out).Error
	return out, err
}

// CountPlaylistEntries returns the number of entries in a playlist.
func CountPlaylistEntries(ctx context.Context, db *gorm.DB, playlistID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.PlaylistEntry{}).Where("playlist_id = ?", playlistID).Count(&n).Error
	return n, err
}

// CreatePlaylistEntry inserts videoID at position; ErrDuplicate if present.
func CreatePlaylistEntry(ctx context.Context, db *gorm.DB, playlistID, videoID string, position int, at time.Time) (*domain.PlaylistEntry, error) {
	e := &domain.PlaylistEntry{
		ID:         uuid.NewString(),
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   position,
		AddedAt:    at,
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, dup(err)
	}
	return e, nil
}

// DeletePlaylistEntry removes videoID from a playlist or returns ErrNotFound.
func DeletePlaylistEntry(ctx context.Context, db *gorm.DB, playlistID, videoID string) error {
	res := db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&domain.PlaylistEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlaylistEntriesExcept removes every entry whose video is not in keep.
func DeletePlaylistEntriesExcept(ctx context.Context, db *gorm.DB, playlistID string, keep []string) error {
	q := db.WithContext(ctx).Where("playlist_id = ?", playlistID)
	if len(keep) > 0 {
		q = q.Where("video_id NOT IN ?", keep)
	}
	return q.Delete(&domain.PlaylistEntry{}).Error
}

// SetPlaylistPositions writes position i to the entry holding videoIDs[i].
func SetPlaylistPositions(ctx context.Context, db *gorm.DB, playlistID string, videoIDs []string) error {
	tx := db.WithContext(ctx)
	for i, vid := range videoIDs {
		if err := tx.Model(&domain.PlaylistEntry{}).
			Where("playlist_id = ? AND video_id = ?", playlistID, vid).
			Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}
