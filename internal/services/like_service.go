// Package services – LikeService
//
// Each user has one liked-videos list. A video can be liked once; the
// video's likes counter follows likes and unlikes best-effort and never
// drops below zero.
package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
)

// LikedItem is one liked video.
type LikedItem struct {
	VideoID string       `json:"videoId"`
	LikedAt time.Time    `json:"likedAt"`
	Video   domain.Video `json:"video"`
}

// LikedPage is a page of liked videos, most recently liked first.
type LikedPage struct {
	Count  int         `json:"count"`
	Total  int         `json:"total"`
	Videos []LikedItem `json:"videos"`
}

// LikeService maintains liked-videos lists.
type LikeService struct {
	DB       *gorm.DB
	Notifier Notifier
}

// Like adds videoID to the user's list and returns the video's like count.
func (s *LikeService) Like(ctx context.Context, userID, videoID string) (int64, error) {
	tr := otel.Tracer("services/LikeService")
	ctx, span := tr.Start(ctx, "Like",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("video.id", videoID),
		),
	)
	defer span.End()

	if err := checkID(videoID); err != nil {
		return 0, err
	}
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if err != nil {
		return 0, orNotFound(err, ErrVideoNotFound)
	}
	list, err := repo.GetOrCreateLikedVideos(ctx, s.DB, userID)
	if err != nil {
		return 0, err
	}
	if _, err := repo.CreateLikedEntry(ctx, s.DB, list.ID, videoID, nowUTC()); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return 0, ErrAlreadyLiked
		}
		return 0, err
	}

	likes := s.adjust(ctx, v, 1)
	if s.Notifier != nil && v.UserID != userID {
		s.Notifier.Notify(ctx, v.UserID, domain.NotifyLike, "Someone liked your video \""+v.Title+"\"", NotifyOptions{
			RelatedUserID:  userID,
			RelatedVideoID: v.ID,
			ActionURL:      "/videos/" + v.ID,
		})
	}
	return likes, nil
}

// Unlike removes videoID from the user's list and returns the like count.
func (s *LikeService) Unlike(ctx context.Context, userID, videoID string) (int64, error) {
	tr := otel.Tracer("services/LikeService")
	ctx, span := tr.Start(ctx, "Unlike",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("video.id", videoID),
		),
	)
	defer span.End()

	if err := checkID(videoID); err != nil {
		return 0, err
	}
	list, err := repo.FindLikedVideos(ctx, s.DB, userID)
	if err != nil {
		return 0, orNotFound(err, ErrLikedNotFound)
	}
	if err := repo.DeleteLikedEntry(ctx, s.DB, list.ID, videoID); err != nil {
		return 0, orNotFound(err, ErrNotLiked)
	}
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if err != nil {
		// The video is gone; the entry was a tombstone.
		return 0, nil
	}
	return s.adjust(ctx, v, -1), nil
}

// adjust applies delta to the video's likes and returns the resulting count.
// Failures are logged and the last known count is returned.
func (s *LikeService) adjust(ctx context.Context, v *domain.Video, delta int) int64 {
	lg := logFrom(ctx)
	if err := repo.AdjustLikes(ctx, s.DB, v.ID, delta); err != nil {
		lg.Warn().Err(err).Str("video_id", v.ID).Int("delta", delta).Msg("likes: adjust counter")
		return v.Likes
	}
	fresh, err := repo.GetVideo(ctx, s.DB, v.ID)
	if err != nil {
		lg.Warn().Err(err).Str("video_id", v.ID).Msg("likes: reload video")
		return v.Likes
	}
	return fresh.Likes
}

// List returns a page of liked videos sorted by like time, newest first.
// Entries whose video was deleted are skipped.
func (s *LikeService) List(ctx context.Context, userID string, limit, skip int) (*LikedPage, error) {
	list, err := repo.FindLikedVideos(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &LikedPage{Videos: []LikedItem{}}, nil
		}
		return nil, err
	}
	entries, err := repo.ListLikedEntries(ctx, s.DB, list.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].LikedAt.After(entries[j].LikedAt) })

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.VideoID
	}
	videos, err := repo.GetVideosByIDs(ctx, s.DB, ids)
	if err != nil {
		return nil, err
	}
	live := make([]LikedItem, 0, len(entries))
	for _, e := range entries {
		if v, ok := videos[e.VideoID]; ok {
			live = append(live, LikedItem{VideoID: e.VideoID, LikedAt: e.LikedAt, Video: v})
		}
	}
	items := page(live, limit, skip)
	return &LikedPage{Count: len(items), Total: len(live), Videos: items}, nil
}

// IsLiked reports whether userID likes videoID.
func (s *LikeService) IsLiked(ctx context.Context, userID, videoID string) (bool, error) {
	if err := checkID(videoID); err != nil {
		return false, err
	}
	return repo.HasLiked(ctx, s.DB, userID, videoID)
}
