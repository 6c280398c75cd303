package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/auth"
	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/http/middleware"
	"github.com/tbourn/go-video-backend/internal/services"
	"github.com/tbourn/go-video-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// UserService covers accounts and sessions.
type UserService interface {
	Register(ctx context.Context, reg auth.Registration) (*services.Session, error)
	Login(ctx context.Context, login, password string) (*services.Session, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID string, up services.Upload) (*domain.User, error)
}

// ChannelService covers channel creation and lookup.
type ChannelService interface {
	Create(ctx context.Context, userID, name string, avatar *services.Upload) (*domain.Channel, error)
	Get(ctx context.Context, id string) (*domain.Channel, error)
	GetByHandle(ctx context.Context, handle string) (*domain.Channel, error)
}

// VideoService covers the upload lifecycle and the public feeds.
type VideoService interface {
	Upload(ctx context.Context, userID string, in services.UploadVideoInput, idemKey string) (*domain.Video, bool, error)
	Complete(ctx context.Context, userID, videoID string) (*domain.Video, error)
	Feed(ctx context.Context, shorts bool, limit, skip int) ([]domain.Video, int64, error)
	FeedStats(ctx context.Context, shorts bool) (int64, *time.Time, error)
	Mine(ctx context.Context, userID string, limit, skip int) ([]domain.Video, int64, error)
	Get(ctx context.Context, id string) (*domain.Video, error)
}

// HistoryService covers the watch history collection.
type HistoryService interface {
	Add(ctx context.Context, userID, videoID string) (int64, error)
	List(ctx context.Context, userID string, limit, skip int) (*services.HistoryPage, error)
	Remove(ctx context.Context, userID, videoID string) error
	Clear(ctx context.Context, userID string) error
}

// LikeService covers the liked-videos collection.
type LikeService interface {
	Like(ctx context.Context, userID, videoID string) (int64, error)
	Unlike(ctx context.Context, userID, videoID string) (int64, error)
	List(ctx context.Context, userID string, limit, skip int) (*services.LikedPage, error)
	IsLiked(ctx context.Context, userID, videoID string) (bool, error)
}

// PlaylistService covers playlist CRUD and membership.
type PlaylistService interface {
	Create(ctx context.Context, userID string, in services.PlaylistInput) (*domain.Playlist, error)
	Get(ctx context.Context, viewerID, id string) (*services.PlaylistView, error)
	Mine(ctx context.Context, userID string) ([]domain.Playlist, error)
	ByUser(ctx context.Context, userID string) ([]domain.Playlist, error)
	Update(ctx context.Context, userID, id string, patch services.PlaylistPatch) (*domain.Playlist, error)
	Delete(ctx context.Context, userID, id string) error
	AddVideo(ctx context.Context, userID, playlistID, videoID string) (*services.PlaylistView, error)
	RemoveVideo(ctx context.Context, userID, playlistID, videoID string) (*services.PlaylistView, error)
	Reorder(ctx context.Context, userID, playlistID string, videoIDs []string) (*services.PlaylistView, error)
}

// SubscriptionService covers the subscription ledger.
type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, channelID, tier string) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, userID, channelID string) error
	ToggleNotify(ctx context.Context, userID, channelID string) (bool, error)
	IsSubscribed(ctx context.Context, userID, channelID string) (bool, error)
	Mine(ctx context.Context, userID string) ([]domain.Subscription, error)
	Subscribers(ctx context.Context, channelID string, limit, skip int) (*services.SubscriberPage, error)
}

// CommentService covers comments and their replies.
type CommentService interface {
	Comment(ctx context.Context, userID, videoID, content string) (*domain.Comment, error)
	Comments(ctx context.Context, videoID string, limit, skip int) (*services.CommentPage, error)
	Reply(ctx context.Context, userID, commentID, content string) (*domain.Reply, error)
	Replies(ctx context.Context, commentID string) ([]domain.Reply, error)
	EditReply(ctx context.Context, userID, commentID, replyID, content string) (*domain.Reply, error)
	DeleteReply(ctx context.Context, userID, commentID, replyID string) error
	React(ctx context.Context, commentID, replyID, reaction string) (*domain.Reply, error)
}

// NotificationService covers the client side of notifications.
type NotificationService interface {
	List(ctx context.Context, userID string, unreadOnly bool, limit, skip int) (*services.NotificationPage, error)
	Stats(ctx context.Context, userID string) (int64, int64, *time.Time, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID, id string) error
	Clear(ctx context.Context, userID string) (int64, error)
}

// SearchService covers video and channel search.
type SearchService interface {
	Videos(ctx context.Context, req services.VideoSearchRequest) (*services.VideoResults, error)
	Channels(ctx context.Context, q string, limit, skip int) (*services.ChannelResults, error)
}

//
// Handler wiring
//

// Services bundles the dependencies of Handlers. Nil members are allowed in
// tests that only exercise a subset of endpoints.
type Services struct {
	Users         UserService
	Channels      ChannelService
	Videos        VideoService
	History       HistoryService
	Likes         LikeService
	Playlists     PlaylistService
	Subscriptions SubscriptionService
	Comments      CommentService
	Notifications NotificationService
	Search        SearchService
}

// Handlers groups every HTTP endpoint of the API.
type Handlers struct {
	users         UserService
	channels      ChannelService
	videos        VideoService
	history       HistoryService
	likes         LikeService
	playlists     PlaylistService
	subscriptions SubscriptionService
	comments      CommentService
	notifications NotificationService
	search        SearchService
}

// New constructs Handlers bound to the given services.
func New(s Services) *Handlers {
	return &Handlers{
		users:         s.Users,
		channels:      s.Channels,
		videos:        s.Videos,
		history:       s.History,
		likes:         s.Likes,
		playlists:     s.Playlists,
		subscriptions: s.Subscriptions,
		comments:      s.Comments,
		notifications: s.Notifications,
		search:        s.Search,
	}
}

//
// Helpers
//

const defaultPageSize = 20

// pageParams reads limit/skip from the query string.
func pageParams(c *gin.Context, def int) (limit, skip int) {
	return utils.LimitSkip(c.Query("limit"), c.Query("skip"), def)
}

// notModified sets a weak ETag built from the collection's size and last
// change, and answers 304 when the client already has it.
func notModified(c *gin.Context, kind, scope string, count int64, latest *time.Time) bool {
	var ts int64
	if latest != nil {
		ts = latest.UnixNano()
	}
	etag := fmt.Sprintf(`W/"%s:%s:%d:%d"`, kind, scope, count, ts)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}

// formUpload opens an optional multipart file. It returns (nil, nil) when
// the field is absent. The caller closes the returned file.
func formUpload(c *gin.Context, field string) (*services.Upload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &services.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}

// badForm answers a multipart parse failure: 413 when the body limit was
// hit, 400 otherwise.
func badForm(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		fail(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "upload exceeds the size limit")
		return
	}
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid multipart form")
}

// observeUpload records an accepted upload's size.
func observeUpload(kind string, up *services.Upload) {
	if up != nil {
		middleware.ObserveUpload(kind, up.Size)
	}
}
