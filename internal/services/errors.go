// Package services implements the business logic of the video platform:
// accounts and channels, the video upload lifecycle, engagement collections
// (watch history, liked videos, playlists), subscriptions, comments and
// replies, notifications, and search.
//
// This file centralizes service-level errors. Every error belongs to one
// kind (ErrInvalidInput, ErrUnauthorized, ErrForbidden, ErrNotFound,
// ErrConflict) so handlers can map it to an HTTP status with errors.Is and
// still show the specific message to the client.
package services

import (
	"errors"
	"fmt"

	"github.com/tbourn/go-video-backend/internal/auth"
)

// Error kinds.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// kindError carries a client-facing message and the kind it belongs to.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newKind(kind error, msg string) error { return &kindError{msg: msg, kind: kind} }

// invalidf returns an ErrInvalidInput error with a formatted message.
func invalidf(format string, args ...any) error {
	return newKind(ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Not found.
var (
	ErrUserNotFound         = newKind(ErrNotFound, "user not found")
	ErrChannelNotFound      = newKind(ErrNotFound, "channel not found")
	ErrVideoNotFound        = newKind(ErrNotFound, "video not found")
	ErrHistoryNotFound      = newKind(ErrNotFound, "history not found")
	ErrNotInHistory         = newKind(ErrNotFound, "video not found in history")
	ErrLikedNotFound        = newKind(ErrNotFound, "liked videos not found")
	ErrNotLiked             = newKind(ErrNotFound, "video not found in liked videos")
	ErrPlaylistNotFound     = newKind(ErrNotFound, "playlist not found")
	ErrNotInPlaylist        = newKind(ErrNotFound, "video not found in playlist")
	ErrSubscriptionNotFound = newKind(ErrNotFound, "subscription not found")
	ErrCommentNotFound      = newKind(ErrNotFound, "comment not found")
	ErrReplyNotFound        = newKind(ErrNotFound, "reply not found")
	ErrNotificationNotFound = newKind(ErrNotFound, "notification not found")
)

// Conflicts.
var (
	ErrUserExists        = newKind(ErrConflict, "username or email already exists")
	ErrChannelExists     = newKind(ErrConflict, "User already has a channel")
	ErrAlreadyLiked      = newKind(ErrConflict, "Video already liked")
	ErrAlreadyInPlaylist = newKind(ErrConflict, "video already in playlist")
	ErrAlreadySubscribed = newKind(ErrConflict, "Already subscribed to this channel")
)

// Bad requests.
var (
	ErrInvalidID     = newKind(ErrInvalidInput, "invalid id format")
	ErrSelfSubscribe = newKind(ErrInvalidInput, "Cannot subscribe to your own channel")
	ErrEmptyContent  = newKind(ErrInvalidInput, "content is required")
	ErrMissingFile   = newKind(ErrInvalidInput, "file is required")
)

// Authorization.
var (
	ErrInvalidCredentials = newKind(ErrUnauthorized, "invalid credentials")
	ErrNotPlaylistOwner   = newKind(ErrForbidden, "you do not own this playlist")
	ErrPrivatePlaylist    = newKind(ErrForbidden, "this playlist is private")
	ErrNotReplyAuthor     = newKind(ErrForbidden, "you can only modify your own replies")
)

// ValidationError reports every rejected field of a request.
type ValidationError struct {
	Fields []auth.FieldError
}

func (e *ValidationError) Error() string { return "validation failed" }

// Unwrap makes ValidationError an ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
