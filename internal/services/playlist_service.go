// Package services – PlaylistService
//
// Playlists are owner-curated ordered lists of videos. Entry positions of a
// playlist always form 0..n-1: adds append, removals and reorders renumber,
// and the multi-row rewrites run in one transaction. The first video added
// becomes the playlist thumbnail.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
)

const (
	playlistTitleMax       = 100
	playlistDescriptionMax = 500
)

// PlaylistInput creates a playlist. Empty visibility means public.
type PlaylistInput struct {
	Title       string
	Description string
	Visibility  string
}

// PlaylistPatch updates a playlist; nil fields are left unchanged.
type PlaylistPatch struct {
	Title       *string
	Description *string
	Visibility  *string
}

// PlaylistItem is one positioned video.
type PlaylistItem struct {
	VideoID  string       `json:"videoId"`
	Position int          `json:"position"`
	AddedAt  time.Time    `json:"addedAt"`
	Video    domain.Video `json:"video"`
}

// PlaylistView is a playlist with its live videos in position order.
type PlaylistView struct {
	domain.Playlist
	Videos []PlaylistItem `json:"videos"`
}

// PlaylistService manages playlists.
type PlaylistService struct {
	DB *gorm.DB
}

func validVisibility(v string) bool {
	switch v {
	case domain.VisibilityPublic, domain.VisibilityPrivate, domain.VisibilityUnlisted:
		return true
	}
	return false
}

func checkPlaylistTitle(t string) error {
	if t == "" || utf8.RuneCountInString(t) > playlistTitleMax {
		return invalidf("title must be 1-%d characters", playlistTitleMax)
	}
	return nil
}

func checkPlaylistDescription(d string) error {
	if utf8.RuneCountInString(d) > playlistDescriptionMax {
		return invalidf("description must be at most %d characters", playlistDescriptionMax)
	}
	return nil
}

// Create makes a new empty playlist owned by userID.
func (s *PlaylistService) Create(ctx context.Context, userID string, in PlaylistInput) (*domain.Playlist, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Visibility = strings.ToLower(strings.TrimSpace(in.Visibility))
	if in.Visibility == "" {
		in.Visibility = domain.VisibilityPublic
	}
	if err := checkPlaylistTitle(in.Title); err != nil {
		return nil, err
	}
	if err := checkPlaylistDescription(in.Description); err != nil {
		return nil, err
	}
	if !validVisibility(in.Visibility) {
		return nil, invalidf("visibility must be public, private, or unlisted")
	}
	p := &domain.Playlist{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Visibility:  in.Visibility,
	}
	if err := repo.CreatePlaylist(ctx, s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns a playlist with its videos. Private playlists are visible to
// their owner only; viewerID may be empty for anonymous requests.
func (s *PlaylistService) Get(ctx context.Context, viewerID, id string) (*PlaylistView, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := repo.GetPlaylist(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, ErrPlaylistNotFound)
	}
	if p.Visibility == domain.VisibilityPrivate && p.UserID != viewerID {
		return nil, ErrPrivatePlaylist
	}
	return s.view(ctx, s.DB, p)
}

// Mine lists every playlist of userID.
func (s *PlaylistService) Mine(ctx context.Context, userID string) ([]domain.Playlist, error) {
	return s.list(ctx, userID, false)
}

// ByUser lists the public playlists of userID.
func (s *PlaylistService) ByUser(ctx context.Context, userID string) ([]domain.Playlist, error) {
	if err := checkID(userID); err != nil {
		return nil, err
	}
	return s.list(ctx, userID, true)
}

func (s *PlaylistService) list(ctx context.Context, userID string, publicOnly bool) ([]domain.Playlist, error) {
	out, err := repo.ListUserPlaylists(ctx, s.DB, userID, publicOnly)
	if out == nil {
		out = []domain.Playlist{}
	}
	return out, err
}

// Update applies patch to a playlist owned by userID.
func (s *PlaylistService) Update(ctx context.Context, userID, id string, patch PlaylistPatch) (*domain.Playlist, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if err := checkPlaylistTitle(t); err != nil {
			return nil, err
		}
		fields["title"] = t
	}
	if patch.Description != nil {
		d := strings.TrimSpace(*patch.Description)
		if err := checkPlaylistDescription(d); err != nil {
			return nil, err
		}
		fields["description"] = d
	}
	if patch.Visibility != nil {
		v := strings.ToLower(strings.TrimSpace(*patch.Visibility))
		if !validVisibility(v) {
			return nil, invalidf("visibility must be public, private, or unlisted")
		}
		fields["visibility"] = v
	}
	if len(fields) == 0 {
		return p, nil
	}
	if err := repo.UpdatePlaylist(ctx, s.DB, p.ID, fields); err != nil {
		return nil, orNotFound(err, ErrPlaylistNotFound)
	}
	p, err = repo.GetPlaylist(ctx, s.DB, p.ID)
	return p, orNotFound(err, ErrPlaylistNotFound)
}

// Delete removes a playlist owned by userID together with its entries.
func (s *PlaylistService) Delete(ctx context.Context, userID, id string) error {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.DeletePlaylist(ctx, tx, p.ID)
	})
	return orNotFound(err, ErrPlaylistNotFound)
}

// AddVideo appends videoID to the end of the playlist.
func (s *PlaylistService) AddVideo(ctx context.Context, userID, playlistID, videoID string) (*PlaylistView, error) {
	tr := otel.Tracer("services/PlaylistService")
	ctx, span := tr.Start(ctx, "AddVideo",
		trace.WithAttributes(
			attribute.String("playlist.id", playlistID),
			attribute.String("video.id", videoID),
		),
	)
	defer span.End()

	if err := checkID(videoID); err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if err != nil {
		return nil, orNotFound(err, ErrVideoNotFound)
	}

	var out *PlaylistView
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.CountPlaylistEntries(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		if _, err := repo.CreatePlaylistEntry(ctx, tx, p.ID, videoID, int(n), nowUTC()); err != nil {
			return err
		}
		fields := map[string]any{"video_count": n + 1}
		if n == 0 && v.Thumbnail != "" {
			fields["thumbnail"] = v.Thumbnail
		}
		if err := repo.UpdatePlaylist(ctx, tx, p.ID, fields); err != nil {
			return err
		}
		fresh, err := repo.GetPlaylist(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		out, err = s.view(ctx, tx, fresh)
		return err
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrAlreadyInPlaylist
		}
		return nil, err
	}
	return out, nil
}

// RemoveVideo removes videoID and closes the gap in positions.
func (s *PlaylistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID string) (*PlaylistView, error) {
	tr := otel.Tracer("services/PlaylistService")
	ctx, span := tr.Start(ctx, "RemoveVideo",
		trace.WithAttributes(
			attribute.String("playlist.id", playlistID),
			attribute.String("video.id", videoID),
		),
	)
	defer span.End()

	if err := checkID(videoID); err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}

	var out *PlaylistView
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.DeletePlaylistEntry(ctx, tx, p.ID, videoID); err != nil {
			return orNotFound(err, ErrNotInPlaylist)
		}
		out, err = s.renumber(ctx, tx, p.ID, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reorder rewrites positions to follow videoIDs. IDs that are not in the
// playlist are ignored, repeated IDs count once, and current entries missing
// from videoIDs are removed.
func (s *PlaylistService) Reorder(ctx context.Context, userID, playlistID string, videoIDs []string) (*PlaylistView, error) {
	tr := otel.Tracer("services/PlaylistService")
	ctx, span := tr.Start(ctx, "Reorder",
		trace.WithAttributes(
			attribute.String("playlist.id", playlistID),
			attribute.Int("videos", len(videoIDs)),
		),
	)
	defer span.End()

	if videoIDs == nil {
		return nil, invalidf("videoIds is required")
	}
	p, err := s.owned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}

	var out *PlaylistView
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		out, err = s.renumber(ctx, tx, p.ID, videoIDs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// renumber rewrites positions to 0..n-1. With order == nil the current
// order is kept; otherwise order defines the new sequence as described on
// Reorder. Call inside a transaction.
func (s *PlaylistService) renumber(ctx context.Context, tx *gorm.DB, playlistID string, order []string) (*PlaylistView, error) {
	entries, err := repo.ListPlaylistEntries(ctx, tx, playlistID)
	if err != nil {
		return nil, err
	}
	current := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		current[e.VideoID] = struct{}{}
	}

	var keep []string
	if order == nil {
		keep = make([]string, 0, len(entries))
		for _, e := range entries {
			keep = append(keep, e.VideoID)
		}
	} else {
		keep = make([]string, 0, len(order))
		seen := make(map[string]struct{}, len(order))
		for _, id := range order {
			if _, ok := current[id]; !ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			keep = append(keep, id)
		}
		if err := repo.DeletePlaylistEntriesExcept(ctx, tx, playlistID, keep); err != nil {
			return nil, err
		}
	}

	if err := repo.SetPlaylistPositions(ctx, tx, playlistID, keep); err != nil {
		return nil, err
	}
	if err := repo.UpdatePlaylist(ctx, tx, playlistID, map[string]any{"video_count": len(keep)}); err != nil {
		return nil, err
	}
	p, err := repo.GetPlaylist(ctx, tx, playlistID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, tx, p)
}

// owned loads a playlist and checks that userID owns it.
func (s *PlaylistService) owned(ctx context.Context, userID, id string) (*domain.Playlist, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := repo.GetPlaylist(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, ErrPlaylistNotFound)
	}
	if p.UserID != userID {
		return nil, ErrNotPlaylistOwner
	}
	return p, nil
}

// view joins the playlist entries with their videos. Deleted videos are
// skipped and the remaining items are numbered 0..n-1.
func (s *PlaylistService) view(ctx context.Context, db *gorm.DB, p *domain.Playlist) (*PlaylistView, error) {
	entries, err := repo.ListPlaylistEntries(ctx, db, p.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.VideoID
	}
	videos, err := repo.GetVideosByIDs(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	items := make([]PlaylistItem, 0, len(entries))
	for _, e := range entries {
		if v, ok := videos[e.VideoID]; ok {
			items = append(items, PlaylistItem{VideoID: e.VideoID, Position: len(items), AddedAt: e.AddedAt, Video: v})
		}
	}
	pv := &PlaylistView{Playlist: *p, Videos: items}
	pv.VideoCount = len(items)
	return pv, nil
}
