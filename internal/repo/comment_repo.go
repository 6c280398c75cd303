// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for comments and
// their replies.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
)

// CreateComment inserts a comment on videoID by userID.
func CreateComment(ctx context.Context, db *gorm.DB, videoID, userID, content string) (*domain.Comment, error) {
	c := &domain.Comment{
		ID:      uuid.NewString(),
		VideoID: videoID,
		UserID:  userID,
		Content: content,
		Replies: []domain.Reply{},
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetComment fetches a comment by ID without replies.
func GetComment(ctx context.Context, db *gorm.DB, id string) (*domain.Comment, error) {
	var c domain.Comment
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListComments returns a page of a video's comments, newest first, with
// replies in creation order, plus the total comment count.
func ListComments(ctx context.Context, db *gorm.DB, videoID string, offset, limit int) ([]domain.Comment, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&domain.Comment{}).
		Where("video_id = ?", videoID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Comment
	err := db.WithContext(ctx).
		Preload("Replies", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at, id") }).
		Where("video_id = ?", videoID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, total, err
}

// CreateReply appends a reply to commentID.
func CreateReply(ctx context.Context, db *gorm.DB, commentID, userID, content string) (*domain.Reply, error) {
	r := &domain.Reply{
		ID:        uuid.NewString(),
		CommentID: commentID,
		UserID:    userID,
		Content:   content,
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetReply fetches replyID scoped to commentID.
func GetReply(ctx context.Context, db *gorm.DB, commentID, replyID string) (*domain.Reply, error) {
	var r domain.Reply
	err := db.WithContext(ctx).
		Where("id = ? AND comment_id = ?", replyID, commentID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReplies returns the replies of a comment in creation order.
func ListReplies(ctx context.Context, db *gorm.DB, commentID string) ([]domain.Reply, error) {
	var out []domain.Reply
	err := db.WithContext(ctx).Where("comment_id = ?", commentID).Order("created_at, id").Find(&out).Error
	return out, err
}

// UpdateReplyContent rewrites a reply's content.
func UpdateReplyContent(ctx context.Context, db *gorm.DB, commentID, replyID, content string) error {
	res := db.WithContext(ctx).
		Model(&domain.Reply{}).
		Where("id = ? AND comment_id = ?", replyID, commentID).
		Updates(map[string]any{"content": content, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReply removes a reply or returns ErrNotFound.
func DeleteReply(ctx context.Context, db *gorm.DB, commentID, replyID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND comment_id = ?", replyID, commentID).
		Delete(&domain.Reply{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BumpReplyCounter increments "likes" or "dislikes" on a reply and returns
// the updated row.
func BumpReplyCounter(ctx context.Context, db *gorm.DB, commentID, replyID, col string) (*domain.Reply, error) {
	res := db.WithContext(ctx).
		Model(&domain.Reply{}).
		Where("id = ? AND comment_id = ?", replyID, commentID).
		UpdateColumn(col, gorm.Expr(col+" + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetReply(ctx, db, commentID, replyID)
}
