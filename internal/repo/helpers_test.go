package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// newTestDB opens a unique in-memory database per test with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{Fullname: "Test User", Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := CreateUser(context.Background(), db, u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedVideo(t *testing.T, db *gorm.DB, userID, status string, duration int) *domain.Video {
	t.Helper()
	v := &domain.Video{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         "video " + status,
		VideoURL:      "https://cdn.example.com/v.mp4",
		Duration:      duration,
		Status:        status,
		StorageKey:    "videos/" + uuid.NewString(),
		UploadSession: uuid.NewString(),
	}
	if status == domain.StatusTemporary {
		exp := time.Now().UTC().Add(time.Hour)
		v.ExpiresAt = &exp
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed video: %v", err)
	}
	return v
}
