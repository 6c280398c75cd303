// Package services – CommentService
//
// Comments belong to a video and own their replies. Replies can be edited
// or deleted by their author only; reply likes and dislikes are plain
// counters without per-user de-duplication.
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
)

const commentContentMax = 1000

// Reply reactions.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// CommentPage is a page of a video's comments.
type CommentPage struct {
	Count    int              `json:"count"`
	Total    int64            `json:"total"`
	Comments []domain.Comment `json:"comments"`
}

// CommentService manages comments and replies.
type CommentService struct {
	DB       *gorm.DB
	Notifier Notifier
}

func checkContent(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(s) > commentContentMax {
		return "", invalidf("content must be at most %d characters", commentContentMax)
	}
	return s, nil
}

// Comment adds a comment to videoID and notifies the video owner.
func (s *CommentService) Comment(ctx context.Context, userID, videoID, content string) (*domain.Comment, error) {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "Comment",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("video.id", videoID),
		),
	)
	defer span.End()

	if err := checkID(videoID); err != nil {
		return nil, err
	}
	content, err := checkContent(content)
	if err != nil {
		return nil, err
	}
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if err != nil {
		return nil, orNotFound(err, ErrVideoNotFound)
	}
	c, err := repo.CreateComment(ctx, s.DB, videoID, userID, content)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil && v.UserID != userID {
		s.Notifier.Notify(ctx, v.UserID, domain.NotifyComment, "New comment on \""+v.Title+"\"", NotifyOptions{
			RelatedUserID:  userID,
			RelatedVideoID: v.ID,
			ActionURL:      "/videos/" + v.ID,
		})
	}
	return c, nil
}

// Comments lists a video's comments, newest first, with their replies.
func (s *CommentService) Comments(ctx context.Context, videoID string, limit, skip int) (*CommentPage, error) {
	if err := checkID(videoID); err != nil {
		return nil, err
	}
	items, total, err := repo.ListComments(ctx, s.DB, videoID, skip, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Comment{}
	}
	return &CommentPage{Count: len(items), Total: total, Comments: items}, nil
}

// Reply adds a reply to commentID and notifies the comment author.
func (s *CommentService) Reply(ctx context.Context, userID, commentID, content string) (*domain.Reply, error) {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "Reply",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("comment.id", commentID),
		),
	)
	defer span.End()

	if err := checkID(commentID); err != nil {
		return nil, err
	}
	content, err := checkContent(content)
	if err != nil {
		return nil, err
	}
	c, err := repo.GetComment(ctx, s.DB, commentID)
	if err != nil {
		return nil, orNotFound(err, ErrCommentNotFound)
	}
	r, err := repo.CreateReply(ctx, s.DB, commentID, userID, content)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil && c.UserID != userID {
		s.Notifier.Notify(ctx, c.UserID, domain.NotifyReply, "Someone replied to your comment", NotifyOptions{
			RelatedUserID:  userID,
			RelatedVideoID: c.VideoID,
			ActionURL:      "/videos/" + c.VideoID,
		})
	}
	return r, nil
}

// Replies lists the replies of a comment in creation order.
func (s *CommentService) Replies(ctx context.Context, commentID string) ([]domain.Reply, error) {
	if err := checkID(commentID); err != nil {
		return nil, err
	}
	if _, err := repo.GetComment(ctx, s.DB, commentID); err != nil {
		return nil, orNotFound(err, ErrCommentNotFound)
	}
	out, err := repo.ListReplies(ctx, s.DB, commentID)
	if out == nil {
		out = []domain.Reply{}
	}
	return out, err
}

// EditReply rewrites a reply authored by userID.
func (s *CommentService) EditReply(ctx context.Context, userID, commentID, replyID, content string) (*domain.Reply, error) {
	content, err := checkContent(content)
	if err != nil {
		return nil, err
	}
	if _, err := s.authored(ctx, userID, commentID, replyID); err != nil {
		return nil, err
	}
	if err := repo.UpdateReplyContent(ctx, s.DB, commentID, replyID, content); err != nil {
		return nil, orNotFound(err, ErrReplyNotFound)
	}
	r, err := repo.GetReply(ctx, s.DB, commentID, replyID)
	return r, orNotFound(err, ErrReplyNotFound)
}

// DeleteReply removes a reply authored by userID.
func (s *CommentService) DeleteReply(ctx context.Context, userID, commentID, replyID string) error {
	if _, err := s.authored(ctx, userID, commentID, replyID); err != nil {
		return err
	}
	return orNotFound(repo.DeleteReply(ctx, s.DB, commentID, replyID), ErrReplyNotFound)
}

// React increments the like or dislike counter of a reply.
func (s *CommentService) React(ctx context.Context, commentID, replyID, reaction string) (*domain.Reply, error) {
	if err := checkID(commentID, replyID); err != nil {
		return nil, err
	}
	col := "likes"
	switch reaction {
	case ReactionLike:
	case ReactionDislike:
		col = "dislikes"
	default:
		return nil, invalidf("unknown reaction %q", reaction)
	}
	if _, err := repo.GetComment(ctx, s.DB, commentID); err != nil {
		return nil, orNotFound(err, ErrCommentNotFound)
	}
	r, err := repo.BumpReplyCounter(ctx, s.DB, commentID, replyID, col)
	if err != nil {
		return nil, orNotFound(err, ErrReplyNotFound)
	}
	return r, nil
}

// authored loads a reply and checks that userID wrote it.
func (s *CommentService) authored(ctx context.Context, userID, commentID, replyID string) (*domain.Reply, error) {
	if err := checkID(commentID, replyID); err != nil {
		return nil, err
	}
	if _, err := repo.GetComment(ctx, s.DB, commentID); err != nil {
		return nil, orNotFound(err, ErrCommentNotFound)
	}
	r, err := repo.GetReply(ctx, s.DB, commentID, replyID)
	if err != nil {
		return nil, orNotFound(err, ErrReplyNotFound)
	}
	if r.UserID != userID {
		return nil, ErrNotReplyAuthor
	}
	return r, nil
}
