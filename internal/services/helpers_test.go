package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
)

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{Fullname: "Test User", Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := repo.CreateUser(context.Background(), db, u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedChannel(t *testing.T, db *gorm.DB, u *domain.User) *domain.Channel {
	t.Helper()
	ch := &domain.Channel{UserID: u.ID, Name: u.Username + " tv", Handle: u.Username}
	if err := repo.CreateChannel(context.Background(), db, ch); err != nil {
		t.Fatalf("seed channel: %v", err)
	}
	if err := repo.AttachChannel(context.Background(), db, u.ID, ch.ID); err != nil {
		t.Fatalf("attach channel: %v", err)
	}
	return ch
}

func seedVideo(t *testing.T, db *gorm.DB, userID, status string, duration int) *domain.Video {
	t.Helper()
	v := &domain.Video{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         "video " + status,
		Description:   "about #testing",
		Category:      "Education",
		VideoURL:      "https://cdn.example.com/v.mp4",
		Thumbnail:     "https://cdn.example.com/thumb.jpg",
		Duration:      duration,
		Status:        status,
		StorageKey:    "videos/" + uuid.NewString(),
		UploadSession: uuid.NewString(),
	}
	if status == domain.StatusTemporary {
		exp := time.Now().UTC().Add(time.Hour)
		v.ExpiresAt = &exp
	}
	if err := repo.CreateVideo(context.Background(), db, v); err != nil {
		t.Fatalf("seed video: %v", err)
	}
	return v
}

func videoFile(name string) Upload {
	body := "fake video bytes"
	return Upload{Filename: name, ContentType: "video/mp4", Size: int64(len(body)), Body: strings.NewReader(body)}
}

// notified is a Notifier that records calls.
type notified struct {
	mu    sync.Mutex
	calls []notifyCall
}

type notifyCall struct {
	UserID  string
	Type    string
	Message string
	Opts    NotifyOptions
}

func (n *notified) Notify(_ context.Context, userID, typ, message string, opts NotifyOptions) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifyCall{userID, typ, message, opts})
}

func (n *notified) all() []notifyCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notifyCall(nil), n.calls...)
}
