// Package services – ChannelService
//
// A user owns at most one channel. Creating it also flips the user's
// hasOwnChannel flag, and both writes commit together.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/storage"
)

// ChannelNameMax caps channel names in runes.
const ChannelNameMax = 50

// ChannelService manages channels.
type ChannelService struct {
	DB      *gorm.DB
	Avatars storage.Storage
}

// Create opens a channel for userID. The handle is the owner's username.
// avatar is optional.
func (s *ChannelService) Create(ctx context.Context, userID, name string, avatar *Upload) (*domain.Channel, error) {
	tr := otel.Tracer("services/ChannelService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > ChannelNameMax {
		return nil, invalidf("channel name must be 1-%d characters", ChannelNameMax)
	}
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		return nil, orNotFound(err, ErrUserNotFound)
	}
	if u.HasOwnChannel {
		return nil, ErrChannelExists
	}

	ch := &domain.Channel{UserID: userID, Name: name, Handle: u.Username}
	var avatarKey string
	if avatar != nil && avatar.Body != nil {
		avatarKey = storage.NewKey("channels", userID, avatar.Filename)
		url, err := s.Avatars.Put(ctx, avatarKey, avatar.Body, avatar.Size, avatar.ContentType, false)
		if err != nil {
			return nil, err
		}
		ch.Avatar = url
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.CreateChannel(ctx, tx, ch); err != nil {
			return err
		}
		return repo.AttachChannel(ctx, tx, userID, ch.ID)
	})
	if err != nil {
		if avatarKey != "" {
			if derr := s.Avatars.Delete(ctx, avatarKey); derr != nil {
				logFrom(ctx).Warn().Err(derr).Str("key", avatarKey).Msg("channel: cleanup avatar")
			}
		}
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrChannelExists
		}
		return nil, err
	}
	return ch, nil
}

// Get returns a channel by ID.
func (s *ChannelService) Get(ctx context.Context, id string) (*domain.Channel, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	ch, err := repo.GetChannel(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, ErrChannelNotFound)
	}
	return ch, nil
}

// GetByHandle returns a channel by its handle. A leading '@' is ignored.
func (s *ChannelService) GetByHandle(ctx context.Context, handle string) (*domain.Channel, error) {
	handle = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
	if handle == "" {
		return nil, invalidf("handle is required")
	}
	ch, err := repo.GetChannelByHandle(ctx, s.DB, handle)
	if err != nil {
		return nil, orNotFound(err, ErrChannelNotFound)
	}
	return ch, nil
}
