// Command server runs the video-sharing API.
//
//	@title						Video Backend API
//	@version					1.0
//	@description				Accounts, channels, video uploads with a temporary lifecycle, feeds, engagement, subscriptions, comments, notifications and search.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				"Bearer <token>"
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-video-backend/docs"
	"github.com/tbourn/go-video-backend/internal/auth"
	"github.com/tbourn/go-video-backend/internal/config"
	"github.com/tbourn/go-video-backend/internal/events"
	httpapi "github.com/tbourn/go-video-backend/internal/http"
	"github.com/tbourn/go-video-backend/internal/observability"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/storage"
	"github.com/tbourn/go-video-backend/internal/sysutil"
	"github.com/tbourn/go-video-backend/internal/worker"
)

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	envFile, envErr := sysutil.LoadDotEnv()

	cfg := config.MustLoad()
	logger := sysutil.InitLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty, observability.DefaultServiceName)
	if envErr != nil {
		logger.Warn().Err(envErr).Msg("dotenv: load failed")
	} else if envFile != "" {
		logger.Debug().Str("file", envFile).Msg("dotenv: loaded")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, observability.Build{Version: version, Environment: cfg.AppEnv})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			logger.Warn().Err(err).Msg("otel: shutdown")
		}
	}()

	db, err := repo.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		return err
	}
	if err := repo.AutoMigrate(db); err != nil {
		return err
	}

	avatars, err := newStorage(ctx, cfg.ProfileBucket, "/static/profile", logger)
	if err != nil {
		return err
	}
	videos, err := newStorage(ctx, cfg.VideoBucket, "/static/videos", logger)
	if err != nil {
		return err
	}

	publisher := events.NewPublisher(cfg.Kafka, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn().Err(err).Msg("events: close publisher")
		}
	}()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		docs.SwaggerInfo.Version = version
	}
	svc := httpapi.RegisterRoutes(r, httpapi.Deps{
		DB:      db,
		Tokens:  auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Avatars: avatars,
		Videos:  videos,
		Events:  publisher,
	}, cfg)

	sweeper := worker.NewSweeper(svc.Videos.Sweep, cfg.Upload.SweepInterval, logger)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.AppEnv).
			Str("version", version).
			Msg("http: listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info().Msg("http: shutting down")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

// newStorage returns S3 storage for a configured bucket and in-process
// storage otherwise.
func newStorage(ctx context.Context, b config.BucketConfig, localBase string, logger zerolog.Logger) (storage.Storage, error) {
	if !b.Enabled() {
		logger.Warn().Str("base", localBase).Msg("storage: no bucket configured, using in-memory store")
		return storage.NewMemoryStorage(localBase), nil
	}
	return storage.NewS3Storage(ctx, b)
}
