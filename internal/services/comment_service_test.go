package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tbourn/go-video-backend/internal/domain"
)

func TestComment_ThreadAndNotifications(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "director")
	critic := seedUser(t, db, "critic")
	fan := seedUser(t, db, "defender")
	v := seedVideo(t, db, owner.ID, domain.StatusCompleted, 200)
	n := &notified{}
	svc := &CommentService{DB: db, Notifier: n}

	c, err := svc.Comment(ctx, critic.ID, v.ID, "  too long  ")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if c.Content != "too long" {
		t.Fatalf("content not trimmed: %q", c.Content)
	}
	r, err := svc.Reply(ctx, fan.ID, c.ID, "not at all")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	// Replying to yourself does not notify.
	if _, err := svc.Reply(ctx, critic.ID, c.ID, "fair"); err != nil {
		t.Fatalf("self reply: %v", err)
	}

	calls := n.all()
	if len(calls) != 2 {
		t.Fatalf("notifications = %+v", calls)
	}
	if calls[0].UserID != owner.ID || calls[0].Type != domain.NotifyComment {
		t.Fatalf("first notification = %+v", calls[0])
	}
	if calls[1].UserID != critic.ID || calls[1].Type != domain.NotifyReply {
		t.Fatalf("second notification = %+v", calls[1])
	}

	page, err := svc.Comments(ctx, v.ID, 10, 0)
	if err != nil || page.Total != 1 || len(page.Comments[0].Replies) != 2 {
		t.Fatalf("comments = %+v, %v", page, err)
	}
	replies, err := svc.Replies(ctx, c.ID)
	if err != nil || len(replies) != 2 || replies[0].ID != r.ID {
		t.Fatalf("replies = %+v, %v", replies, err)
	}

	if _, err := svc.EditReply(ctx, critic.ID, c.ID, r.ID, "hijack"); !errors.Is(err, ErrNotReplyAuthor) {
		t.Fatalf("foreign edit: got %v", err)
	}
	edited, err := svc.EditReply(ctx, fan.ID, c.ID, r.ID, "on reflection, maybe")
	if err != nil || edited.Content != "on reflection, maybe" {
		t.Fatalf("edit = %+v, %v", edited, err)
	}

	if _, err := svc.React(ctx, c.ID, r.ID, ReactionLike); err != nil {
		t.Fatalf("like reply: %v", err)
	}
	reacted, err := svc.React(ctx, c.ID, r.ID, ReactionDislike)
	if err != nil || reacted.Likes != 1 || reacted.Dislikes != 1 {
		t.Fatalf("react = %+v, %v", reacted, err)
	}
	if _, err := svc.React(ctx, c.ID, r.ID, "love"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown reaction: got %v", err)
	}

	if err := svc.DeleteReply(ctx, critic.ID, c.ID, r.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign delete: got %v", err)
	}
	if err := svc.DeleteReply(ctx, fan.ID, c.ID, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.React(ctx, c.ID, r.ID, ReactionLike); !errors.Is(err, ErrReplyNotFound) {
		t.Fatalf("react on deleted reply: got %v", err)
	}
}

func TestComment_Validation(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "writer")
	v := seedVideo(t, db, u.ID, domain.StatusCompleted, 200)
	svc := &CommentService{DB: db}

	if _, err := svc.Comment(ctx, u.ID, v.ID, "   "); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("empty: got %v", err)
	}
	if _, err := svc.Comment(ctx, u.ID, v.ID, strings.Repeat("x", commentContentMax+1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("too long: got %v", err)
	}
	if _, err := svc.Comment(ctx, u.ID, uuid.NewString(), "hi"); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("missing video: got %v", err)
	}
	if _, err := svc.Reply(ctx, u.ID, uuid.NewString(), "hi"); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("missing comment: got %v", err)
	}
}
