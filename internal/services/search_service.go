// Package services – SearchService
//
// Video search matches any query term against title, description, and
// hashtags of completed videos, with optional category and duration filters.
// Channel search matches name or handle and ranks by subscriber count.
package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/search"
)

// VideoSearchRequest carries the raw query parameters of a video search.
type VideoSearchRequest struct {
	Q        string
	Category string
	Duration string
	SortBy   string
	Limit    int
	Skip     int
}

// VideoResults is a page of video search results.
type VideoResults struct {
	Query  string         `json:"query"`
	Count  int            `json:"count"`
	Total  int64          `json:"total"`
	Videos []domain.Video `json:"videos"`
}

// ChannelResults is a page of channel search results.
type ChannelResults struct {
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Total    int64            `json:"total"`
	Channels []domain.Channel `json:"channels"`
}

// SearchService runs searches over videos and channels.
type SearchService struct {
	DB     *gorm.DB
	Parser *search.Parser
}

func (s *SearchService) parser() *search.Parser {
	if s.Parser != nil {
		return s.Parser
	}
	return search.NewParser()
}

var sortOrders = map[string]string{
	search.SortDate:   "created_at desc",
	search.SortViews:  "views desc",
	search.SortRating: "likes desc",
}

// Videos searches completed videos.
func (s *SearchService) Videos(ctx context.Context, req VideoSearchRequest) (*VideoResults, error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Videos",
		trace.WithAttributes(
			attribute.String("search.sort", req.SortBy),
			attribute.Int("limit", req.Limit),
			attribute.Int("skip", req.Skip),
		),
	)
	defer span.End()

	q, err := s.parser().Parse(req.Q, req.Category, req.Duration, req.SortBy)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			return nil, invalidf("Search query is required")
		}
		return nil, err
	}
	if q.Category != "" && !domain.IsCategory(q.Category) {
		return nil, invalidf("unknown category %q", q.Category)
	}

	vs := repo.VideoSearch{
		Terms:    q.Terms,
		Category: q.Category,
		OrderBy:  sortOrders[q.SortBy],
		Offset:   req.Skip,
		Limit:    req.Limit,
	}
	switch q.Duration {
	case search.DurationShort:
		maxDur := domain.ShortMaxSeconds
		vs.MaxDur = &maxDur
	case search.DurationLong:
		minDur := domain.ShortMaxSeconds + 1
		vs.MinDur = &minDur
	}
	span.SetAttributes(attribute.Int("search.terms", len(q.Terms)))

	videos, total, err := repo.SearchVideos(ctx, s.DB, vs)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return &VideoResults{Query: q.Raw, Count: len(videos), Total: total, Videos: videos}, nil
}

// Channels searches channels by name or handle.
func (s *SearchService) Channels(ctx context.Context, q string, limit, skip int) (*ChannelResults, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, invalidf("Search query is required")
	}
	channels, total, err := repo.SearchChannels(ctx, s.DB, strings.TrimPrefix(q, "@"), skip, limit)
	if err != nil {
		return nil, err
	}
	if channels == nil {
		channels = []domain.Channel{}
	}
	return &ChannelResults{Query: q, Count: len(channels), Total: total, Channels: channels}, nil
}
