// Package services – VideoService
//
// This file owns the video upload lifecycle:
//
//	upload ──► temporary (expiresAt = now + TTL) ──complete──► completed
//	                │
//	                └── expiry ──► reclaimed by Sweep (row, then blob)
//
// Before a blob is written a PendingUpload marker is recorded, and it is
// removed once the video row commits. Markers that outlive their expiry point
// at blobs no row references; Sweep deletes those too. Only completed videos
// are ever publicly listed.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/storage"
)

// IdempotencyScopeUpload scopes Idempotency-Key records of video uploads.
const IdempotencyScopeUpload = "videos.upload"

const (
	videoTitleMax       = 100
	videoDescriptionMax = 5000
	defaultUploadTTL    = 24 * time.Hour
	defaultSweepBatch   = 100
)

// UploadVideoInput is a validated-by-service upload request.
type UploadVideoInput struct {
	Title       string
	Description string
	Category    string
	Duration    int
	File        Upload
}

// SweepReport counts what one Sweep pass did.
type SweepReport struct {
	Videos      int   // expired temporary videos removed
	Orphans     int   // stale pending-upload blobs removed
	Failed      int   // items left for the next pass
	Idempotency int64 // expired idempotency records purged
}

// VideoService manages uploads, completion, feeds, and reclamation.
type VideoService struct {
	DB      *gorm.DB
	Storage storage.Storage

	UploadTTL      time.Duration
	IdempotencyTTL time.Duration
	SweepBatch     int

	// Now is overridable in tests.
	Now func() time.Time
}

func (s *VideoService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return nowUTC()
}

func (s *VideoService) ttl() time.Duration {
	if s.UploadTTL > 0 {
		return s.UploadTTL
	}
	return defaultUploadTTL
}

func validateUpload(in *UploadVideoInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	if in.File.Body == nil {
		return newKind(ErrInvalidInput, "Video not uploaded")
	}
	if in.Title == "" || in.Description == "" || in.Category == "" {
		return invalidf("Title, description, and category are required")
	}
	if utf8.RuneCountInString(in.Title) > videoTitleMax {
		return invalidf("title must be at most %d characters", videoTitleMax)
	}
	if utf8.RuneCountInString(in.Description) > videoDescriptionMax {
		return invalidf("description must be at most %d characters", videoDescriptionMax)
	}
	if !domain.IsCategory(in.Category) {
		return invalidf("unknown category %q", in.Category)
	}
	if in.Duration <= 0 {
		return invalidf("duration must be a positive number of seconds")
	}
	if ct := in.File.ContentType; ct != "" && !strings.HasPrefix(ct, "video/") && ct != "application/octet-stream" {
		return invalidf("file must be a video")
	}
	return nil
}

// Upload stores the file and creates a temporary video owned by userID.
// When idemKey is set and a previous upload with the same key exists, that
// video is returned with replayed=true and nothing is uploaded.
func (s *VideoService) Upload(ctx context.Context, userID string, in UploadVideoInput, idemKey string) (v *domain.Video, replayed bool, err error) {
	tr := otel.Tracer("services/VideoService")
	ctx, span := tr.Start(ctx, "Upload",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Bool("idempotent", idemKey != ""),
		),
	)
	defer span.End()

	if err := validateUpload(&in); err != nil {
		return nil, false, err
	}
	lg := logFrom(ctx)
	now := s.now()

	if idemKey != "" {
		rec, err := repo.GetIdempotency(ctx, s.DB, userID, IdempotencyScopeUpload, idemKey, now)
		switch {
		case err == nil:
			prev, gerr := repo.GetVideo(ctx, s.DB, rec.ResourceID)
			if gerr != nil {
				return nil, false, orNotFound(gerr, ErrVideoNotFound)
			}
			span.SetAttributes(attribute.Bool("replayed", true))
			return prev, true, nil
		case !errors.Is(err, repo.ErrNotFound):
			return nil, false, err
		}
	}

	expires := now.Add(s.ttl())
	key := storage.NewKey("videos", userID, in.File.Filename)
	if _, err := repo.CreatePendingUpload(ctx, s.DB, userID, domain.BucketVideo, key, expires); err != nil {
		return nil, false, err
	}

	url, err := s.Storage.Put(ctx, key, in.File.Body, in.File.Size, in.File.ContentType, true)
	if err != nil {
		// The marker stays so the sweep removes any partial blob.
		return nil, false, err
	}

	v = &domain.Video{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Duration:      in.Duration,
		VideoURL:      url,
		Status:        domain.StatusTemporary,
		StorageKey:    key,
		ExpiresAt:     &expires,
		UploadSession: uuid.NewString(),
	}
	if err := repo.CreateVideo(ctx, s.DB, v); err != nil {
		if derr := s.Storage.Delete(ctx, key); derr != nil {
			lg.Error().Err(derr).Str("key", key).Msg("upload: cleanup blob after failed insert")
		} else if merr := repo.DeletePendingUpload(ctx, s.DB, key); merr != nil {
			lg.Warn().Err(merr).Str("key", key).Msg("upload: drop pending marker")
		}
		return nil, false, err
	}

	if err := repo.DeletePendingUpload(ctx, s.DB, key); err != nil {
		lg.Warn().Err(err).Str("key", key).Msg("upload: drop pending marker")
	}
	if idemKey != "" {
		if _, err := repo.CreateIdempotency(ctx, s.DB, userID, IdempotencyScopeUpload, idemKey, v.ID, 201, s.IdempotencyTTL); err != nil {
			lg.Warn().Err(err).Str("video_id", v.ID).Msg("upload: record idempotency key")
		}
	}
	span.SetAttributes(attribute.String("video.id", v.ID))
	return v, false, nil
}

// Complete finalizes a temporary video owned by userID. A missing video, a
// foreign video, and an already completed one all yield ErrVideoNotFound.
// The channel counter and blob tag are updated best-effort afterwards.
func (s *VideoService) Complete(ctx context.Context, userID, videoID string) (*domain.Video, error) {
	tr := otel.Tracer("services/VideoService")
	ctx, span := tr.Start(ctx, "Complete",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("video.id", videoID),
		),
	)
	defer span.End()

	if err := checkID(videoID); err != nil {
		return nil, err
	}
	if err := repo.CompleteVideo(ctx, s.DB, videoID, userID, s.now()); err != nil {
		return nil, orNotFound(err, ErrVideoNotFound)
	}
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if err != nil {
		return nil, orNotFound(err, ErrVideoNotFound)
	}

	lg := logFrom(ctx)
	if err := repo.AdjustVideosCount(ctx, s.DB, userID, 1); err != nil {
		lg.Warn().Err(err).Str("user_id", userID).Msg("complete: bump channel videos count")
	}
	if err := s.Storage.MarkPermanent(ctx, v.StorageKey); err != nil {
		lg.Warn().Err(err).Str("video_id", v.ID).Msg("complete: clear temporary tag")
	}
	return v, nil
}

// feedFilter maps a feed kind to its duration bounds.
func feedFilter(shorts bool) repo.FeedFilter {
	if shorts {
		maxDur := domain.ShortMaxSeconds
		return repo.FeedFilter{MaxDuration: &maxDur}
	}
	minDur := domain.ShortMaxSeconds + 1
	return repo.FeedFilter{MinDuration: &minDur}
}

// Feed lists completed videos, newest first: shorts (duration <= 60s) or
// long-form videos.
func (s *VideoService) Feed(ctx context.Context, shorts bool, limit, skip int) ([]domain.Video, int64, error) {
	tr := otel.Tracer("services/VideoService")
	ctx, span := tr.Start(ctx, "Feed",
		trace.WithAttributes(
			attribute.Bool("shorts", shorts),
			attribute.Int("limit", limit),
			attribute.Int("skip", skip),
		),
	)
	defer span.End()

	items, total, err := repo.ListFeed(ctx, s.DB, feedFilter(shorts), skip, limit)
	if items == nil {
		items = []domain.Video{}
	}
	return items, total, err
}

// FeedStats returns the size and last modification of a feed for ETags.
func (s *VideoService) FeedStats(ctx context.Context, shorts bool) (int64, *time.Time, error) {
	return repo.FeedStats(ctx, s.DB, feedFilter(shorts))
}

// Mine lists every video of userID regardless of status.
func (s *VideoService) Mine(ctx context.Context, userID string, limit, skip int) ([]domain.Video, int64, error) {
	items, total, err := repo.ListUserVideos(ctx, s.DB, userID, skip, limit)
	if items == nil {
		items = []domain.Video{}
	}
	return items, total, err
}

// Get returns a completed video.
func (s *VideoService) Get(ctx context.Context, id string) (*domain.Video, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	v, err := repo.GetCompletedVideo(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, ErrVideoNotFound)
	}
	return v, nil
}

// Sweep reclaims expired temporary videos and stale pending uploads. Each
// item is handled independently; failures are logged and counted, and the
// item is retried on the next pass.
//
// A video row is deleted before its blob, and only while still temporary,
// so a video completed during the sweep keeps its blob. When the blob delete
// then fails a pending marker is recorded for it instead.
func (s *VideoService) Sweep(ctx context.Context) (SweepReport, error) {
	tr := otel.Tracer("services/VideoService")
	ctx, span := tr.Start(ctx, "Sweep")
	defer span.End()

	var rep SweepReport
	lg := logFrom(ctx)
	now := s.now()
	batch := s.SweepBatch
	if batch <= 0 {
		batch = defaultSweepBatch
	}

	expired, err := repo.ListExpiredTemporary(ctx, s.DB, now, batch)
	if err != nil {
		return rep, err
	}
	for _, v := range expired {
		if err := repo.DeleteTemporaryVideo(ctx, s.DB, v.ID); err != nil {
			if !errors.Is(err, repo.ErrNotFound) {
				rep.Failed++
				lg.Error().Err(err).Str("video_id", v.ID).Msg("sweep: delete expired video")
			}
			continue
		}
		if err := s.Storage.Delete(ctx, v.StorageKey); err != nil {
			rep.Failed++
			lg.Error().Err(err).Str("video_id", v.ID).Str("key", v.StorageKey).Msg("sweep: delete expired blob")
			if _, merr := repo.CreatePendingUpload(ctx, s.DB, v.UserID, domain.BucketVideo, v.StorageKey, now); merr != nil && !errors.Is(merr, repo.ErrDuplicate) {
				lg.Error().Err(merr).Str("key", v.StorageKey).Msg("sweep: record orphan blob")
			}
			continue
		}
		rep.Videos++
		lg.Info().Str("video_id", v.ID).Str("user_id", v.UserID).Msg("sweep: reclaimed expired upload")
	}

	pending, err := repo.ListExpiredPendingUploads(ctx, s.DB, now, batch)
	if err != nil {
		return rep, err
	}
	for _, p := range pending {
		referenced, err := repo.StorageKeyReferenced(ctx, s.DB, p.StorageKey)
		if err != nil {
			rep.Failed++
			lg.Error().Err(err).Str("key", p.StorageKey).Msg("sweep: check pending upload")
			continue
		}
		if !referenced {
			if err := s.Storage.Delete(ctx, p.StorageKey); err != nil {
				rep.Failed++
				lg.Error().Err(err).Str("key", p.StorageKey).Msg("sweep: delete orphan blob")
				continue
			}
			rep.Orphans++
		}
		if err := repo.DeletePendingUpload(ctx, s.DB, p.StorageKey); err != nil {
			rep.Failed++
			lg.Error().Err(err).Str("key", p.StorageKey).Msg("sweep: delete pending marker")
		}
	}

	if n, err := repo.PurgeExpiredIdempotency(ctx, s.DB, now); err != nil {
		lg.Warn().Err(err).Msg("sweep: purge idempotency records")
	} else {
		rep.Idempotency = n
	}

	span.SetAttributes(
		attribute.Int("sweep.videos", rep.Videos),
		attribute.Int("sweep.orphans", rep.Orphans),
		attribute.Int("sweep.failed", rep.Failed),
	)
	return rep, nil
}
