// Package services – HistoryService
//
// Watch history is an ordered, de-duplicated list per user: watching a video
// again moves it to the front, and the oldest entries are evicted past
// MaxEntries. Recording a watch also bumps the video's view counter; that
// increment is best-effort and never rolls the history write back.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
)

// DefaultHistoryMax is the history cap used when MaxEntries is unset.
const DefaultHistoryMax = 1000

// HistoryItem is one watched video.
type HistoryItem struct {
	VideoID   string       `json:"videoId"`
	WatchedAt time.Time    `json:"watchedAt"`
	Video     domain.Video `json:"video"`
}

// HistoryPage is a page of watch history. Count is the page size and Total
// the number of entries whose video still exists.
type HistoryPage struct {
	Count  int           `json:"count"`
	Total  int           `json:"total"`
	Videos []HistoryItem `json:"videos"`
}

// HistoryService maintains per-user watch history.
type HistoryService struct {
	DB         *gorm.DB
	MaxEntries int
}

func (s *HistoryService) max() int {
	if s.MaxEntries > 0 {
		return s.MaxEntries
	}
	return DefaultHistoryMax
}

// Add records that userID watched videoID and returns the video's view count.
func (s *HistoryService) Add(ctx context.Context, userID, videoID string) (int64, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "Add",
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
	h, err := repo.GetOrCreateHistory(ctx, s.DB, userID)
	if err != nil {
		return 0, err
	}

	var evicted int64
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.PushHistoryEntry(ctx, tx, h.ID, videoID, nowUTC()); err != nil {
			return err
		}
		n, err := repo.TrimHistory(ctx, tx, h.ID, s.max())
		evicted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int64("history.evicted", evicted))

	views, err := repo.IncrementViews(ctx, s.DB, videoID)
	if err != nil {
		logFrom(ctx).Warn().Err(err).Str("video_id", videoID).Msg("history: increment views")
		return v.Views, nil
	}
	return views, nil
}

// List returns a page of history, most recent first. Entries whose video was
// deleted are skipped before paging.
func (s *HistoryService) List(ctx context.Context, userID string, limit, skip int) (*HistoryPage, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("limit", limit),
			attribute.Int("skip", skip),
		),
	)
	defer span.End()

	h, err := repo.FindHistory(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &HistoryPage{Videos: []HistoryItem{}}, nil
		}
		return nil, err
	}
	entries, err := repo.ListHistoryEntries(ctx, s.DB, h.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.VideoID
	}
	videos, err := repo.GetVideosByIDs(ctx, s.DB, ids)
	if err != nil {
		return nil, err
	}
	live := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		if v, ok := videos[e.VideoID]; ok {
			live = append(live, HistoryItem{VideoID: e.VideoID, WatchedAt: e.WatchedAt, Video: v})
		}
	}
	items := page(live, limit, skip)
	return &HistoryPage{Count: len(items), Total: len(live), Videos: items}, nil
}

// Remove deletes videoID from the user's history.
func (s *HistoryService) Remove(ctx context.Context, userID, videoID string) error {
	if err := checkID(videoID); err != nil {
		return err
	}
	h, err := repo.FindHistory(ctx, s.DB, userID)
	if err != nil {
		return orNotFound(err, ErrHistoryNotFound)
	}
	return orNotFound(repo.DeleteHistoryEntry(ctx, s.DB, h.ID, videoID), ErrNotInHistory)
}

// Clear empties the user's history, creating it when absent.
func (s *HistoryService) Clear(ctx context.Context, userID string) error {
	h, err := repo.GetOrCreateHistory(ctx, s.DB, userID)
	if err != nil {
		return err
	}
	_, err = repo.ClearHistory(ctx, s.DB, h.ID)
	return err
}
