// Comment and reply HTTP handlers.
//
//   - POST   /videos/:id/comments                                (auth)
//   - GET    /videos/:id/comments
//   - POST   /comments/:commentId/replies                        (auth)
//   - GET    /comments/:commentId/replies
//   - PUT    /comments/:commentId/replies/:replyId               (auth, author)
//   - DELETE /comments/:commentId/replies/:replyId               (auth, author)
//   - POST   /comments/:commentId/replies/:replyId/like          (auth)
//   - POST   /comments/:commentId/replies/:replyId/dislike       (auth)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/http/middleware"
	"github.com/tbourn/go-video-backend/internal/services"
)

// ContentRequest carries the text of a comment or reply.
type ContentRequest struct {
	Content string `json:"content" example:"Great video!"`
}

func bindContent(c *gin.Context) (string, bool) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return "", false
	}
	return req.Content, true
}

// AddComment godoc
// @ID          addComment
// @Summary     Comment on a video
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path      string                   true  "Video ID (UUID)"  format(uuid)
// @Param       body  body      handlers.ContentRequest  true  "Comment"
// @Success     201   {object}  handlers.SuccessResponse "comment"
// @Failure     400   {object}  handlers.ErrorResponse   "Bad request"
// @Failure     404   {object}  handlers.ErrorResponse   "Video not found"
// @Router      /videos/{id}/comments [post]
func (h *Handlers) AddComment(c *gin.Context) {
	content, good := bindContent(c)
	if !good {
		return
	}
	cm, err := h.comments.Comment(c.Request.Context(), middleware.UserID(c), c.Param("id"), content)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusCreated, "Comment added successfully", gin.H{"comment": cm})
}

// ListComments godoc
// @ID          listComments
// @Summary     A video's comments with replies
// @Tags        Comments
// @Produce     json
// @Param       id     path   string  true   "Video ID (UUID)"  format(uuid)
// @Param       limit  query  int     false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip   query  int     false  "Offset"     minimum(0) default(0)
// @Success     200    {object}  handlers.SuccessResponse  "count, total, comments"
// @Router      /videos/{id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	limit, skip := pageParams(c, defaultPageSize)
	p, err := h.comments.Comments(c.Request.Context(), c.Param("id"), limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": p.Count, "total": p.Total, "comments": p.Comments})
}

// AddReply godoc
// @ID          addReply
// @Summary     Reply to a comment
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       commentId  path      string                   true  "Comment ID (UUID)"  format(uuid)
// @Param       body       body      handlers.ContentRequest  true  "Reply"
// @Success     201        {object}  handlers.SuccessResponse "reply"
// @Failure     404        {object}  handlers.ErrorResponse   "Comment not found"
// @Router      /comments/{commentId}/replies [post]
func (h *Handlers) AddReply(c *gin.Context) {
	content, good := bindContent(c)
	if !good {
		return
	}
	r, err := h.comments.Reply(c.Request.Context(), middleware.UserID(c), c.Param("commentId"), content)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusCreated, "Reply added successfully", gin.H{"reply": r})
}

// ListReplies godoc
// @ID          listReplies
// @Summary     A comment's replies
// @Tags        Comments
// @Produce     json
// @Param       commentId  path      string  true  "Comment ID (UUID)"  format(uuid)
// @Success     200        {object}  handlers.SuccessResponse  "count, replies"
// @Failure     404        {object}  handlers.ErrorResponse    "Comment not found"
// @Router      /comments/{commentId}/replies [get]
func (h *Handlers) ListReplies(c *gin.Context) {
	items, err := h.comments.Replies(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": len(items), "replies": items})
}

// EditReply godoc
// @ID          editReply
// @Summary     Edit one of the caller's replies
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       commentId  path      string                   true  "Comment ID (UUID)"  format(uuid)
// @Param       replyId    path      string                   true  "Reply ID (UUID)"    format(uuid)
// @Param       body       body      handlers.ContentRequest  true  "New text"
// @Success     200        {object}  handlers.SuccessResponse "reply"
// @Failure     403        {object}  handlers.ErrorResponse   "Not the author"
// @Failure     404        {object}  handlers.ErrorResponse   "Reply not found"
// @Router      /comments/{commentId}/replies/{replyId} [put]
func (h *Handlers) EditReply(c *gin.Context) {
	content, good := bindContent(c)
	if !good {
		return
	}
	r, err := h.comments.EditReply(c.Request.Context(), middleware.UserID(c), c.Param("commentId"), c.Param("replyId"), content)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Reply updated successfully", gin.H{"reply": r})
}

// DeleteReply godoc
// @ID          deleteReply
// @Summary     Delete one of the caller's replies
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
// @Param       commentId  path      string  true  "Comment ID (UUID)"  format(uuid)
// @Param       replyId    path      string  true  "Reply ID (UUID)"    format(uuid)
// @Success     200        {object}  handlers.SuccessResponse
// @Failure     403        {object}  handlers.ErrorResponse  "Not the author"
// @Failure     404        {object}  handlers.ErrorResponse  "Reply not found"
// @Router      /comments/{commentId}/replies/{replyId} [delete]
func (h *Handlers) DeleteReply(c *gin.Context) {
	if err := h.comments.DeleteReply(c.Request.Context(), middleware.UserID(c), c.Param("commentId"), c.Param("replyId")); err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Reply deleted successfully", nil)
}

// LikeReply godoc
// @ID          likeReply
// @Summary     Like a reply
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
// @Param       commentId  path      string  true  "Comment ID (UUID)"  format(uuid)
// @Param       replyId    path      string  true  "Reply ID (UUID)"    format(uuid)
// @Success     200        {object}  handlers.SuccessResponse  "likes, dislikes"
// @Router      /comments/{commentId}/replies/{replyId}/like [post]
func (h *Handlers) LikeReply(c *gin.Context) { h.react(c, services.ReactionLike) }

// DislikeReply godoc
// @ID          dislikeReply
// @Summary     Dislike a reply
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
// @Param       commentId  path      string  true  "Comment ID (UUID)"  format(uuid)
// @Param       replyId    path      string  true  "Reply ID (UUID)"    format(uuid)
// @Success     200        {object}  handlers.SuccessResponse  "likes, dislikes"
// @Router      /comments/{commentId}/replies/{replyId}/dislike [post]
func (h *Handlers) DislikeReply(c *gin.Context) { h.react(c, services.ReactionDislike) }

func (h *Handlers) react(c *gin.Context, reaction string) {
	r, err := h.comments.React(c.Request.Context(), c.Param("commentId"), c.Param("replyId"), reaction)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"likes": r.Likes, "dislikes": r.Dislikes})
}
