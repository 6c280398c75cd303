package domain

import "time"

// Playlist visibilities.
const (
	VisibilityPublic   = "public"
	VisibilityPrivate  = "private"
	VisibilityUnlisted = "unlisted"
)

// History is the per-user watch history header. Entries are ordered by Seq
// descending (most recent first); NextSeq is the next value to hand out.
type History struct {
	ID        string    `json:"id"     gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"userId" gorm:"type:char(36);not null;uniqueIndex:ux_history_user"`
	NextSeq   int64     `json:"-"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name for History.
func (History) TableName() string { return "histories" }

// HistoryEntry is one watched video. A video appears at most once per history.
type HistoryEntry struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	HistoryID string    `json:"-"         gorm:"type:char(36);not null;uniqueIndex:ux_history_video,priority:1;index:idx_history_seq,priority:1"`
	VideoID   string    `json:"videoId"   gorm:"type:char(36);not null;uniqueIndex:ux_history_video,priority:2"`
	Seq       int64     `json:"-"         gorm:"not null;index:idx_history_seq,priority:2"`
	WatchedAt time.Time `json:"watchedAt" gorm:"not null"`

	History History `json:"-" gorm:"foreignKey:HistoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for HistoryEntry.
func (HistoryEntry) TableName() string { return "history_entries" }

// LikedVideos is the per-user liked-videos header.
type LikedVideos struct {
	ID        string    `json:"id"     gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"userId" gorm:"type:char(36);not null;uniqueIndex:ux_liked_user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name for LikedVideos.
func (LikedVideos) TableName() string { return "liked_videos" }

// LikedVideoEntry is one liked video. A video appears at most once per list.
type LikedVideoEntry struct {
	ID            string    `json:"id"      gorm:"type:char(36);primaryKey"`
	LikedVideosID string    `json:"-"       gorm:"type:char(36);not null;uniqueIndex:ux_liked_video,priority:1"`
	VideoID       string    `json:"videoId" gorm:"type:char(36);not null;uniqueIndex:ux_liked_video,priority:2"`
	LikedAt       time.Time `json:"likedAt" gorm:"not null"`

	LikedVideos LikedVideos `json:"-" gorm:"foreignKey:LikedVideosID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for LikedVideoEntry.
func (LikedVideoEntry) TableName() string { return "liked_video_entries" }

// Playlist is a user-curated ordered list of videos.
type Playlist struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID      string    `json:"userId"      gorm:"type:char(36);not null;index"`
	Title       string    `json:"title"       gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	Visibility  string    `json:"visibility"  gorm:"type:varchar(16);not null;default:'public'"`
	Thumbnail   string    `json:"thumbnail"   gorm:"type:text"`
	VideoCount  int       `json:"videoCount"  gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Playlist.
func (Playlist) TableName() string { return "playlists" }

// PlaylistEntry places a video in a playlist. Positions of one playlist
// always form the contiguous sequence 0..n-1.
type PlaylistEntry struct {
	ID         string    `json:"id"       gorm:"type:char(36);primaryKey"`
	PlaylistID string    `json:"-"        gorm:"type:char(36);not null;uniqueIndex:ux_playlist_video,priority:1;index:idx_playlist_pos,priority:1"`
	VideoID    string    `json:"videoId"  gorm:"type:char(36);not null;uniqueIndex:ux_playlist_video,priority:2"`
	Position   int       `json:"position" gorm:"not null;index:idx_playlist_pos,priority:2"`
	AddedAt    time.Time `json:"addedAt"  gorm:"not null"`

	Playlist Playlist `json:"-" gorm:"foreignKey:PlaylistID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for PlaylistEntry.
func (PlaylistEntry) TableName() string { return "playlist_entries" }
