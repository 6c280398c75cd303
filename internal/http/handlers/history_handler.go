// Watch history and liked-videos handlers (auth).
//
//   - POST   /history/:videoId
//   - GET    /history/my-history
//   - DELETE /history/clear
//   - DELETE /history/:videoId
//   - POST   /likes/:videoId
//   - DELETE /likes/:videoId
//   - GET    /likes/my-liked-videos
//   - GET    /likes/check/:videoId
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/http/middleware"
)

const defaultHistoryPage = 50

// AddToHistory godoc
// @ID          addToHistory
// @Summary     Record a view
// @Description Moves the video to the front of the caller's history and increments its view count.
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Param       videoId  path      string  true  "Video ID (UUID)"  format(uuid)
// @Success     200      {object}  handlers.SuccessResponse  "views"
// @Failure     400      {object}  handlers.ErrorResponse    "Invalid id"
// @Failure     404      {object}  handlers.ErrorResponse    "Video not found"
// @Router      /history/{videoId} [post]
func (h *Handlers) AddToHistory(c *gin.Context) {
	views, err := h.history.Add(c.Request.Context(), middleware.UserID(c), c.Param("videoId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Video added to history", gin.H{"views": views})
}

// MyHistory godoc
// @ID          myHistory
// @Summary     The caller's watch history
// @Description Most recent first; entries of deleted videos are skipped.
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query  int  false  "Page size"  minimum(1) maximum(100) default(50)
// @Param       skip   query  int  false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "count, total, videos"
// @Router      /history/my-history [get]
func (h *Handlers) MyHistory(c *gin.Context) {
	limit, skip := pageParams(c, defaultHistoryPage)
	p, err := h.history.List(c.Request.Context(), middleware.UserID(c), limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": p.Count, "total": p.Total, "videos": p.Videos})
}

// RemoveFromHistory godoc
// @ID          removeFromHistory
// @Summary     Remove one video from history
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Param       videoId  path      string  true  "Video ID (UUID)"  format(uuid)
// @Success     200      {object}  handlers.SuccessResponse
// @Failure     404      {object}  handlers.ErrorResponse  "Not in history"
// @Router      /history/{videoId} [delete]
func (h *Handlers) RemoveFromHistory(c *gin.Context) {
	if err := h.history.Remove(c.Request.Context(), middleware.UserID(c), c.Param("videoId")); err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Video removed from history", nil)
}

// ClearHistory godoc
// @ID          clearHistory
// @Summary     Clear the caller's history
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.SuccessResponse
// @Router      /history/clear [delete]
func (h *Handlers) ClearHistory(c *gin.Context) {
	if err := h.history.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "History cleared", nil)
}

// LikeVideo godoc
// @ID          likeVideo
// @Summary     Like a video
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
// @Param       videoId  path      string  true  "Video ID (UUID)"  format(uuid)
// @Success     200      {object}  handlers.SuccessResponse  "likes"
// @Failure     404      {object}  handlers.ErrorResponse    "Video not found"
// @Failure     409      {object}  handlers.ErrorResponse    "Video already liked"
// @Router      /likes/{videoId} [post]
func (h *Handlers) LikeVideo(c *gin.Context) {
	likes, err := h.likes.Like(c.Request.Context(), middleware.UserID(c), c.Param("videoId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Video liked successfully", gin.H{"likes": likes})
}

// UnlikeVideo godoc
// @ID          unlikeVideo
// @Summary     Remove a like
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
// @Param       videoId  path      string  true  "Video ID (UUID)"  format(uuid)
// @Success     200      {object}  handlers.SuccessResponse  "likes"
// @Failure     404      {object}  handlers.ErrorResponse    "Not liked"
// @Router      /likes/{videoId} [delete]
func (h *Handlers) UnlikeVideo(c *gin.Context) {
	likes, err := h.likes.Unlike(c.Request.Context(), middleware.UserID(c), c.Param("videoId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Video unliked successfully", gin.H{"likes": likes})
}

// MyLikedVideos godoc
// @ID          myLikedVideos
// @Summary     The caller's liked videos
// @Description Most recently liked first; entries of deleted videos are skipped.
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query  int  false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip   query  int  false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "count, total, videos"
// @Router      /likes/my-liked-videos [get]
func (h *Handlers) MyLikedVideos(c *gin.Context) {
	limit, skip := pageParams(c, defaultPageSize)
	p, err := h.likes.List(c.Request.Context(), middleware.UserID(c), limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": p.Count, "total": p.Total, "videos": p.Videos})
}

// CheckLiked godoc
// @ID          checkLiked
// @Summary     Whether the caller liked a video
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
// @Param       videoId  path      string  true  "Video ID (UUID)"  format(uuid)
// @Success     200      {object}  handlers.SuccessResponse  "isLiked"
// @Router      /likes/check/{videoId} [get]
func (h *Handlers) CheckLiked(c *gin.Context) {
	liked, err := h.likes.IsLiked(c.Request.Context(), middleware.UserID(c), c.Param("videoId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"isLiked": liked})
}
