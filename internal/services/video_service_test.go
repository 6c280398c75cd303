package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/storage"
)

func newVideoService(t *testing.T) (*VideoService, *storage.MemoryStorage) {
	t.Helper()
	store := storage.NewMemoryStorage("https://cdn.test")
	return &VideoService{
		DB:             newServiceDB(t),
		Storage:        store,
		UploadTTL:      time.Hour,
		IdempotencyTTL: time.Hour,
	}, store
}

func uploadInput(duration int) UploadVideoInput {
	return UploadVideoInput{
		Title:       "My clip",
		Description: "a day out #travel #Travel",
		Category:    "Travel & Events",
		Duration:    duration,
		File:        videoFile("clip.mp4"),
	}
}

func TestVideo_UploadCompleteLifecycle(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()
	u := seedUser(t, svc.DB, "uploader")
	ch := seedChannel(t, svc.DB, u)

	v, replayed, err := svc.Upload(ctx, u.ID, uploadInput(45), "")
	if err != nil || replayed {
		t.Fatalf("upload = %v, replayed=%v", err, replayed)
	}
	if v.Status != domain.StatusTemporary || v.ExpiresAt == nil {
		t.Fatalf("new upload must be temporary with expiry: %+v", v)
	}
	if len(v.Hashtags) != 1 || v.Hashtags[0] != "travel" {
		t.Fatalf("hashtags = %v", v.Hashtags)
	}
	obj, ok := store.Object(v.StorageKey)
	if !ok || !obj.Temporary {
		t.Fatalf("blob missing or not tagged temporary")
	}

	// Temporary videos are not listed.
	items, total, err := svc.Feed(ctx, true, 10, 0)
	if err != nil || total != 0 || len(items) != 0 {
		t.Fatalf("feed before complete = %d, %v", total, err)
	}
	if _, err := svc.Get(ctx, v.ID); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("temporary video must not be fetchable, got %v", err)
	}

	done, err := svc.Complete(ctx, u.ID, v.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != domain.StatusCompleted || done.ExpiresAt != nil {
		t.Fatalf("completed video = %+v", done)
	}
	if obj, _ := store.Object(v.StorageKey); obj.Temporary {
		t.Fatalf("blob still tagged temporary")
	}
	if _, err := svc.Complete(ctx, u.ID, v.ID); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("second complete: want ErrVideoNotFound, got %v", err)
	}

	items, total, err = svc.Feed(ctx, true, 10, 0)
	if err != nil || total != 1 || items[0].ID != v.ID {
		t.Fatalf("shorts feed = %+v, %v", items, err)
	}
	if _, total, _ = svc.Feed(ctx, false, 10, 0); total != 0 {
		t.Fatalf("45s video leaked into long feed")
	}

	fresh, err := repo.GetChannel(ctx, svc.DB, ch.ID)
	if err != nil || fresh.VideosCount != 1 {
		t.Fatalf("videos count = %+v, %v", fresh, err)
	}
}

func TestVideo_CompleteRejectsForeignVideo(t *testing.T) {
	svc, _ := newVideoService(t)
	ctx := context.Background()
	owner := seedUser(t, svc.DB, "rightful")
	thief := seedUser(t, svc.DB, "thief")

	v, _, err := svc.Upload(ctx, owner.ID, uploadInput(300), "")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if _, err := svc.Complete(ctx, thief.ID, v.ID); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("want ErrVideoNotFound, got %v", err)
	}
	if _, err := svc.Complete(ctx, owner.ID, "bogus"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want invalid id, got %v", err)
	}
}

func TestVideo_UploadValidation(t *testing.T) {
	svc, store := newVideoService(t)
	u := seedUser(t, svc.DB, "sloppy")

	noFile := uploadInput(10)
	noFile.File = Upload{}
	noTitle := uploadInput(10)
	noTitle.Title = "  "
	badCategory := uploadInput(10)
	badCategory.Category = "Cooking"
	zeroDuration := uploadInput(0)
	notVideo := uploadInput(10)
	notVideo.File.ContentType = "image/png"

	for name, in := range map[string]UploadVideoInput{
		"no file":       noFile,
		"no title":      noTitle,
		"bad category":  badCategory,
		"zero duration": zeroDuration,
		"not a video":   notVideo,
	} {
		if _, _, err := svc.Upload(context.Background(), u.ID, in, ""); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: want invalid input, got %v", name, err)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("rejected uploads must not store blobs")
	}
}

func TestVideo_UploadIdempotentReplay(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()
	u := seedUser(t, svc.DB, "retrier")

	first, replayed, err := svc.Upload(ctx, u.ID, uploadInput(20), "key-1")
	if err != nil || replayed {
		t.Fatalf("first upload = %v, replayed=%v", err, replayed)
	}
	second, replayed, err := svc.Upload(ctx, u.ID, uploadInput(20), "key-1")
	if err != nil || !replayed {
		t.Fatalf("replay = %v, replayed=%v", err, replayed)
	}
	if second.ID != first.ID {
		t.Fatalf("replay returned %s, want %s", second.ID, first.ID)
	}
	if store.Len() != 1 {
		t.Fatalf("replay stored another blob: %d objects", store.Len())
	}

	// Keys are per user.
	other := seedUser(t, svc.DB, "stranger")
	third, replayed, err := svc.Upload(ctx, other.ID, uploadInput(20), "key-1")
	if err != nil || replayed || third.ID == first.ID {
		t.Fatalf("foreign key reuse = %v, replayed=%v", err, replayed)
	}
}

func TestVideo_PutFailureLeavesMarkerForSweep(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()
	u := seedUser(t, svc.DB, "flaky")
	store.PutErr = errors.New("bucket unavailable")

	if _, _, err := svc.Upload(ctx, u.ID, uploadInput(20), ""); err == nil {
		t.Fatalf("expected upload error")
	}
	var markers int64
	svc.DB.Model(&domain.PendingUpload{}).Count(&markers)
	if markers != 1 {
		t.Fatalf("pending markers = %d, want 1", markers)
	}
	var videos int64
	svc.DB.Model(&domain.Video{}).Count(&videos)
	if videos != 0 {
		t.Fatalf("no video row expected, got %d", videos)
	}
}

func TestVideo_SweepReclaimsExpiredUploads(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()
	u := seedUser(t, svc.DB, "forgetful")
	base := time.Now().UTC()
	svc.Now = func() time.Time { return base }

	stale, _, err := svc.Upload(ctx, u.ID, uploadInput(20), "")
	if err != nil {
		t.Fatalf("upload stale: %v", err)
	}
	kept, _, err := svc.Upload(ctx, u.ID, uploadInput(20), "")
	if err != nil {
		t.Fatalf("upload kept: %v", err)
	}
	if _, err := svc.Complete(ctx, u.ID, kept.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// An orphan blob from a crashed upload and a marker whose video exists.
	if _, err := store.Put(ctx, "videos/orphan", strings.NewReader("partial"), 0, "video/mp4", true); err != nil {
		t.Fatalf("put orphan: %v", err)
	}
	if _, err := repo.CreatePendingUpload(ctx, svc.DB, u.ID, domain.BucketVideo, "videos/orphan", base); err != nil {
		t.Fatalf("orphan marker: %v", err)
	}
	if _, err := repo.CreatePendingUpload(ctx, svc.DB, u.ID, domain.BucketVideo, kept.StorageKey, base); err != nil {
		t.Fatalf("kept marker: %v", err)
	}

	svc.Now = func() time.Time { return base.Add(2 * time.Hour) }
	rep, err := svc.Sweep(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if rep.Videos != 1 || rep.Orphans != 1 || rep.Failed != 0 {
		t.Fatalf("report = %+v", rep)
	}
	if _, err := repo.GetVideo(ctx, svc.DB, stale.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expired video row survived")
	}
	if _, ok := store.Object(stale.StorageKey); ok {
		t.Fatalf("expired blob survived")
	}
	if _, ok := store.Object("videos/orphan"); ok {
		t.Fatalf("orphan blob survived")
	}
	if _, ok := store.Object(kept.StorageKey); !ok {
		t.Fatalf("completed video's blob was deleted")
	}
	var markers int64
	svc.DB.Model(&domain.PendingUpload{}).Count(&markers)
	if markers != 0 {
		t.Fatalf("markers left = %d", markers)
	}
}

func TestVideo_SweepBlobFailureRecordsMarker(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()
	u := seedUser(t, svc.DB, "unlucky")
	base := time.Now().UTC()
	svc.Now = func() time.Time { return base }

	v, _, err := svc.Upload(ctx, u.ID, uploadInput(20), "")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	store.DeleteErr = errors.New("bucket unavailable")
	svc.Now = func() time.Time { return base.Add(2 * time.Hour) }
	rep, err := svc.Sweep(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if rep.Videos != 0 || rep.Failed == 0 {
		t.Fatalf("report = %+v", rep)
	}
	if _, err := repo.GetVideo(ctx, svc.DB, v.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("row should be gone after sweep")
	}

	store.DeleteErr = nil
	rep, err = svc.Sweep(ctx)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if rep.Orphans != 1 {
		t.Fatalf("second report = %+v", rep)
	}
	if _, ok := store.Object(v.StorageKey); ok {
		t.Fatalf("blob survived second sweep")
	}
}

func TestVideo_MineIncludesEveryStatus(t *testing.T) {
	svc, _ := newVideoService(t)
	ctx := context.Background()
	u := seedUser(t, svc.DB, "creator")
	seedVideo(t, svc.DB, u.ID, domain.StatusCompleted, 100)
	seedVideo(t, svc.DB, u.ID, domain.StatusTemporary, 100)

	items, total, err := svc.Mine(ctx, u.ID, 10, 0)
	if err != nil || total != 2 || len(items) != 2 {
		t.Fatalf("mine = %d, %v", total, err)
	}
	feed, _, _ := svc.Feed(ctx, false, 10, 0)
	if len(feed) != 1 || feed[0].Status != domain.StatusCompleted {
		t.Fatalf("long feed = %+v", feed)
	}
}
