// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging and redaction, panic recovery,
// metrics, CORS, security headers, authentication, idempotency, and rate
// limiting.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/auth"
	"github.com/tbourn/go-video-backend/internal/config"
	"github.com/tbourn/go-video-backend/internal/events"
	"github.com/tbourn/go-video-backend/internal/http/handlers"
	"github.com/tbourn/go-video-backend/internal/http/middleware"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/search"
	"github.com/tbourn/go-video-backend/internal/services"
	"github.com/tbourn/go-video-backend/internal/storage"
)

// Deps carries the collaborators RegisterRoutes builds services from.
type Deps struct {
	DB      *gorm.DB
	Tokens  *auth.Tokens
	Avatars storage.Storage // profile bucket
	Videos  storage.Storage // video bucket
	Events  events.Publisher
}

// Services exposes the constructed services; the caller needs Videos to run
// the upload sweeper.
type Services struct {
	Users         *services.UserService
	Channels      *services.ChannelService
	Videos        *services.VideoService
	History       *services.HistoryService
	Likes         *services.LikeService
	Playlists     *services.PlaylistService
	Subscriptions *services.SubscriptionService
	Comments      *services.CommentService
	Notifications *services.NotificationService
	Search        *services.SearchService
}

// NewServices builds every service from d and cfg.
func NewServices(d Deps, cfg config.Config) *Services {
	notifications := &services.NotificationService{DB: d.DB, Events: d.Events}
	return &Services{
		Users:    &services.UserService{DB: d.DB, Tokens: d.Tokens, Avatars: d.Avatars},
		Channels: &services.ChannelService{DB: d.DB, Avatars: d.Avatars},
		Videos: &services.VideoService{
			DB:             d.DB,
			Storage:        d.Videos,
			UploadTTL:      cfg.Upload.TTL,
			IdempotencyTTL: cfg.IdempotencyTTL,
		},
		History:       &services.HistoryService{DB: d.DB, MaxEntries: cfg.HistoryMaxEntries},
		Likes:         &services.LikeService{DB: d.DB, Notifier: notifications},
		Playlists:     &services.PlaylistService{DB: d.DB},
		Subscriptions: &services.SubscriptionService{DB: d.DB, Notifier: notifications},
		Comments:      &services.CommentService{DB: d.DB, Notifier: notifications},
		Notifications: notifications,
		Search: &services.SearchService{DB: d.DB, Parser: search.NewParser(
			search.WithStopwords(cfg.Search.Stopwords),
			search.WithMaxTerms(cfg.Search.MaxTerms),
		)},
	}
}

func (s *Services) handlers() handlers.Services {
	return handlers.Services{
		Users:         s.Users,
		Channels:      s.Channels,
		Videos:        s.Videos,
		History:       s.History,
		Likes:         s.Likes,
		Playlists:     s.Playlists,
		Subscriptions: s.Subscriptions,
		Comments:      s.Comments,
		Notifications: s.Notifications,
		Search:        s.Search,
	}
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and returns the services it built.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger (development) or RedactingLogger: structured access logs
//  4. Recovery: capture panics after logger
//  5. ErrorDetails: expose internal error text in development only
//  6. Metrics
//  7. CORS, security headers, gzip
//  8. Per route group: body limit, Auth, idempotency validator, rate limiter
//
// Auth runs before the idempotency validator (lookups are per user) and
// before the rate limiter (buckets are per user when authenticated).
func RegisterRoutes(r *gin.Engine, d Deps, cfg config.Config) *Services {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Access logs; production scrubs tokens and credentials
	if cfg.IsDevelopment() {
		r.Use(middleware.Logger())
	} else {
		r.Use(middleware.RedactingLogger(middleware.RedactOptions{
			MaskHeaders: []string{"X-API-Key"},
		}))
	}

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Error detail in responses
	r.Use(middleware.ErrorDetails(cfg.IsDevelopment()))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) CORS, security headers, compression
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"}) })

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// In-process blob stores serve their own URLs
	mountLocalStore(r, d.Avatars)
	mountLocalStore(r, d.Videos)

	svc := NewServices(d, cfg)
	h := handlers.New(svc.handlers())

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	authn := middleware.Auth(d.Tokens)
	optional := middleware.OptionalAuth(d.Tokens)
	jsonBody := limitBody(cfg.MaxBodyBytes)
	uploadBody := limitBody(cfg.Upload.MaxUploadBytes)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api/v1"

	// Anonymous or optionally identified routes
	pub := api.Group("", jsonBody, optional, rl.Handler())
	{
		pub.POST("/users/register", h.Register)
		pub.POST("/users/login", h.Login)

		pub.GET("/channels/:id", h.GetChannel)
		pub.GET("/channels/handle/:handle", h.GetChannelByHandle)

		pub.GET("/videos", h.ListVideos)
		pub.GET("/shorts", h.ListShorts)
		pub.GET("/videos/:id", h.GetVideo)
		pub.GET("/videos/:id/comments", h.ListComments)
		pub.GET("/comments/:commentId/replies", h.ListReplies)

		pub.GET("/playlists/user/:userId", h.UserPlaylists)
		pub.GET("/playlists/:id", h.GetPlaylist)

		pub.GET("/subscriptions/channel/:channelId/subscribers", h.ChannelSubscribers)

		pub.GET("/search/videos", h.SearchVideos)
		pub.GET("/search/channels", h.SearchChannels)
	}

	// Multipart uploads: larger body limit
	uploads := api.Group("", uploadBody, authn)
	{
		uploads.PATCH("/users/avatar", rl.Handler(), h.UpdateAvatar)
		uploads.POST("/channels", rl.Handler(), h.CreateChannel)
		uploads.POST("/videos/upload",
			middleware.IdempotencyValidator(
				middleware.IdempotencyOptions{Scope: services.IdempotencyScopeUpload, MaxLen: 200},
				uploadLookup(d.DB),
			),
			rl.Handler(),
			h.UploadVideo,
		)
	}

	// Authenticated JSON routes
	priv := api.Group("", jsonBody, authn, rl.Handler())
	{
		priv.GET("/users/me", h.Me)

		priv.POST("/videos/:id/complete", h.CompleteVideo)
		priv.GET("/videos/my-videos", h.MyVideos)

		priv.POST("/history/:videoId", h.AddToHistory)
		priv.GET("/history/my-history", h.MyHistory)
		priv.DELETE("/history/clear", h.ClearHistory)
		priv.DELETE("/history/:videoId", h.RemoveFromHistory)

		priv.POST("/likes/:videoId", h.LikeVideo)
		priv.DELETE("/likes/:videoId", h.UnlikeVideo)
		priv.GET("/likes/my-liked-videos", h.MyLikedVideos)
		priv.GET("/likes/check/:videoId", h.CheckLiked)

		priv.POST("/playlists", h.CreatePlaylist)
		priv.GET("/playlists/my-playlists", h.MyPlaylists)
		priv.PUT("/playlists/:id", h.UpdatePlaylist)
		priv.DELETE("/playlists/:id", h.DeletePlaylist)
		priv.POST("/playlists/:id/videos/:videoId", h.AddToPlaylist)
		priv.DELETE("/playlists/:id/videos/:videoId", h.RemoveFromPlaylist)
		priv.PUT("/playlists/:id/reorder", h.ReorderPlaylist)

		priv.POST("/subscriptions/:channelId", h.Subscribe)
		priv.DELETE("/subscriptions/:channelId", h.Unsubscribe)
		priv.GET("/subscriptions/my-subscriptions", h.MySubscriptions)
		priv.GET("/subscriptions/check/:channelId", h.CheckSubscription)
		priv.PATCH("/subscriptions/:channelId/notify", h.ToggleSubscriptionNotify)

		priv.POST("/videos/:id/comments", h.AddComment)
		priv.POST("/comments/:commentId/replies", h.AddReply)
		priv.PUT("/comments/:commentId/replies/:replyId", h.EditReply)
		priv.DELETE("/comments/:commentId/replies/:replyId", h.DeleteReply)
		priv.POST("/comments/:commentId/replies/:replyId/like", h.LikeReply)
		priv.POST("/comments/:commentId/replies/:replyId/dislike", h.DislikeReply)

		priv.GET("/notifications", h.ListNotifications)
		priv.GET("/notifications/unread-count", h.UnreadNotificationCount)
		priv.PATCH("/notifications/read-all", h.MarkAllNotificationsRead)
		priv.DELETE("/notifications/clear", h.ClearNotifications)
		priv.PATCH("/notifications/:id/read", h.MarkNotificationRead)
		priv.DELETE("/notifications/:id", h.DeleteNotification)
	}

	return svc
}

// uploadLookup reports whether an unexpired idempotency record exists.
func uploadLookup(db *gorm.DB) middleware.IdempotencyLookup {
	return func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
		_, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, repo.ErrNotFound):
			return false, nil
		default:
			return false, err
		}
	}
}

// corsMiddleware allows every origin when none are configured, otherwise
// only the listed ones. ETag is exposed so browsers can revalidate feeds.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match", middleware.HeaderIdempotencyKey},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag", "Retry-After", "Idempotency-Replayed"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		base.AllowAllOrigins = true // AllowCredentials must stay false
		return []gin.HandlerFunc{
			// Force ACAO: * even for requests without an Origin header.
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody caps the request body at maxBytes using http.MaxBytesReader.
// Reads past the cap fail with *http.MaxBytesError. A non-positive cap
// disables the limit.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}

// mountLocalStore serves a MemoryStorage whose BaseURL is a local path.
func mountLocalStore(r *gin.Engine, s storage.Storage) {
	m, ok := s.(*storage.MemoryStorage)
	if !ok || !strings.HasPrefix(m.BaseURL, "/") {
		return
	}
	r.GET(strings.TrimSuffix(m.BaseURL, "/")+"/*key", gin.WrapH(m))
}
