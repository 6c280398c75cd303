// Package domain defines the persistence models for users, channels, videos,
// engagement collections, social records, and upload bookkeeping. These types
// are mapped with GORM and form the core data layer of the video platform.
package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Video lifecycle states. Only StatusCompleted videos are publicly listed.
const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusTemporary  = "temporary"
	StatusCompleted  = "completed"
	StatusPublished  = "published"
	StatusUnlisted   = "unlisted"
	StatusPrivate    = "private"
)

// ShortMaxSeconds is the longest duration still classified as a short.
const ShortMaxSeconds = 60

// Categories enumerates the accepted video categories.
var Categories = []string{
	"Film & Animation",
	"Autos & Vehicles",
	"Music",
	"Pets & Animals",
	"Sports",
	"Travel & Events",
	"Gaming",
	"People & Blogs",
	"Comedy",
	"Entertainment",
	"News & Politics",
	"Howto & Style",
	"Education",
	"Science & Technology",
	"Nonprofits & Activism",
}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ErrTemporaryWithoutExpiry is returned when a temporary video is written
// without an expiry timestamp.
var ErrTemporaryWithoutExpiry = errors.New("temporary video requires expires_at")

// User is the identity root. HasOwnChannel flips to true exactly once, when
// the user's channel is created, and ChannelID is set at the same time.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Username / Email: unique, used for login.
//   - PasswordHash: bcrypt hash, never serialized.
//   - Avatar: public URL of the profile image.
type User struct {
	ID            string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Fullname      string    `json:"fullname"      gorm:"type:varchar(64);not null"`
	Username      string    `json:"username"      gorm:"type:varchar(30);not null;uniqueIndex:ux_users_username"`
	Email         string    `json:"email"         gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash  string    `json:"-"             gorm:"type:varchar(255);not null"`
	Avatar        string    `json:"avatar"        gorm:"type:text"`
	HasOwnChannel bool      `json:"hasOwnChannel" gorm:"not null;default:false"`
	ChannelID     *string   `json:"channelId,omitempty" gorm:"type:char(36)"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Channel is the one-to-one publishing identity of a User. Handle is copied
// from the owner's username at creation and never changes. Counters are
// denormalized and maintained with atomic increments by other operations.
type Channel struct {
	ID               string    `json:"id"               gorm:"type:char(36);primaryKey"`
	UserID           string    `json:"userId"           gorm:"type:char(36);not null;uniqueIndex:ux_channels_user"`
	Name             string    `json:"name"             gorm:"type:varchar(50);not null"`
	Handle           string    `json:"handle"           gorm:"type:varchar(30);not null;uniqueIndex:ux_channels_handle"`
	Avatar           string    `json:"avatar"           gorm:"type:text"`
	SubscribersCount int64     `json:"subscribersCount" gorm:"not null;default:0;index"`
	VideosCount      int64     `json:"videosCount"      gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Channel.
func (Channel) TableName() string { return "channels" }

// Video is an uploaded asset owned by a user.
//
// Invariants:
//   - Status temporary implies ExpiresAt != nil.
//   - Status completed implies ExpiresAt == nil.
//
// Hashtags are derived from Description when the row is created.
type Video struct {
	ID            string     `json:"id"            gorm:"type:char(36);primaryKey"`
	UserID        string     `json:"userId"        gorm:"type:char(36);not null;index:idx_videos_user_created,priority:1"`
	Title         string     `json:"title"         gorm:"type:varchar(100);not null"`
	Description   string     `json:"description"   gorm:"type:text"`
	Hashtags      []string   `json:"hashtags"      gorm:"serializer:json;type:text"`
	Category      string     `json:"category"      gorm:"type:varchar(32);index"`
	Duration      int        `json:"duration"      gorm:"not null;index"`
	VideoURL      string     `json:"videoUrl"      gorm:"type:text;not null"`
	Thumbnail     string     `json:"thumbnail"     gorm:"type:text"`
	Views         int64      `json:"views"         gorm:"not null;default:0"`
	Likes         int64      `json:"likes"         gorm:"not null;default:0"`
	Dislikes      int64      `json:"dislikes"      gorm:"not null;default:0"`
	Status        string     `json:"status"        gorm:"type:varchar(16);not null;index:idx_videos_status_expiry,priority:1"`
	StorageKey    string     `json:"-"             gorm:"type:varchar(255);not null"`
	ExpiresAt     *time.Time `json:"expiresAt"     gorm:"index:idx_videos_status_expiry,priority:2"`
	UploadSession string     `json:"uploadSession" gorm:"type:char(36);not null;uniqueIndex:ux_videos_upload_session"`
	CreatedAt     time.Time  `json:"createdAt"     gorm:"index:idx_videos_user_created,priority:2"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// TableName returns the database table name for Video.
func (Video) TableName() string { return "videos" }

// BeforeCreate derives hashtags and enforces the temporary-expiry invariant.
func (v *Video) BeforeCreate(*gorm.DB) error {
	v.Hashtags = ExtractHashtags(v.Description)
	if v.Status == StatusTemporary && v.ExpiresAt == nil {
		return ErrTemporaryWithoutExpiry
	}
	if v.Status == StatusCompleted {
		v.ExpiresAt = nil
	}
	return nil
}

// IsShort reports whether the video is classified as a short.
func (v Video) IsShort() bool { return v.Duration <= ShortMaxSeconds }
