// Package services – UserService
//
// Account registration, credential login, and profile avatar updates.
// Passwords are stored as bcrypt hashes and sessions are stateless bearer
// tokens issued by auth.Tokens.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/auth"
	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/storage"
)

// Session is an authenticated user with a freshly issued bearer token.
type Session struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// UserService manages accounts.
type UserService struct {
	DB      *gorm.DB
	Tokens  *auth.Tokens
	Avatars storage.Storage
}

// Register validates reg, creates the account, and signs the user in.
func (s *UserService) Register(ctx context.Context, reg auth.Registration) (*Session, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	reg = reg.Normalize()
	if fields := reg.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	taken, err := repo.UserTaken(ctx, s.DB, reg.Username, reg.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserExists
	}
	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Fullname:     reg.Fullname,
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
	}
	if err := repo.CreateUser(ctx, s.DB, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return s.session(u)
}

// Login checks the password of the account whose email or username equals
// login. Unknown accounts and wrong passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, login, password string) (*Session, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "Login")
	defer span.End()

	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" || password == "" {
		return nil, invalidf("email or username and password are required")
	}
	u, err := repo.GetUserByLogin(ctx, s.DB, login)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(u)
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, ErrUserNotFound)
	}
	return u, nil
}

// UpdateAvatar stores a new profile image and points the user at it. The
// blob is removed again when the user row cannot be updated.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, up Upload) (*domain.User, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "UpdateAvatar",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if up.Body == nil {
		return nil, ErrMissingFile
	}
	if !strings.HasPrefix(up.ContentType, "image/") {
		return nil, invalidf("avatar must be an image")
	}
	key := storage.NewKey("avatars", userID, up.Filename)
	url, err := s.Avatars.Put(ctx, key, up.Body, up.Size, up.ContentType, false)
	if err != nil {
		return nil, err
	}
	if err := repo.UpdateUserAvatar(ctx, s.DB, userID, url); err != nil {
		if derr := s.Avatars.Delete(ctx, key); derr != nil {
			logFrom(ctx).Warn().Err(derr).Str("key", key).Msg("avatar: cleanup blob")
		}
		return nil, orNotFound(err, ErrUserNotFound)
	}
	return s.Get(ctx, userID)
}

func (s *UserService) session(u *domain.User) (*Session, error) {
	token, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, ExpiresAt: exp}, nil
}
