// Video HTTP handlers.
//
//   - POST /videos/upload         (auth, multipart, optional Idempotency-Key)
//   - POST /videos/:id/complete   (auth)
//   - GET  /videos                (long-form feed, ETag)
//   - GET  /shorts                (shorts feed, ETag)
//   - GET  /videos/my-videos      (auth)
//   - GET  /videos/:id
//
// Uploaded videos start out temporary and are invisible to the feeds until
// their owner completes them; unfinished uploads are reclaimed by the sweeper.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/http/middleware"
	"github.com/tbourn/go-video-backend/internal/services"
)

// UploadVideo godoc
// @ID          uploadVideo
// @Summary     Upload a video
// @Description Stores the file and creates a temporary video that expires unless completed.
// @Description With an Idempotency-Key header a retried request returns the first video (200, Idempotency-Replayed: true).
// @Tags        Videos
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       Idempotency-Key  header    string  false  "Client retry key"
// @Param       video            formData  file    true   "Video file"
// @Param       title            formData  string  true   "Title (max 100)"
// @Param       description      formData  string  true   "Description (max 5000)"
// @Param       category         formData  string  true   "Category"
// @Param       duration         formData  int     true   "Duration in seconds"
// @Success     201  {object}  handlers.SuccessResponse  "video"
// @Success     200  {object}  handlers.SuccessResponse  "video (replayed)"
// @Failure     400  {object}  handlers.ErrorResponse    "Bad request"
// @Failure     413  {object}  handlers.ErrorResponse    "Too large"
// @Failure     500  {object}  handlers.ErrorResponse    "Upload failed"
// @Router      /videos/upload [post]
func (h *Handlers) UploadVideo(c *gin.Context) {
	up, f, err := formUpload(c, "video")
	if err != nil {
		badForm(c, err)
		return
	}
	if f != nil {
		defer f.Close()
	}

	in := services.UploadVideoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}
	if d := strings.TrimSpace(c.PostForm("duration")); d != "" {
		n, err := strconv.ParseFloat(d, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "duration must be a number of seconds")
			return
		}
		in.Duration = int(n)
	}
	if up != nil {
		in.File = *up
	}

	key, _ := middleware.GetIdempotencyKey(c)
	v, replayed, err := h.videos.Upload(c.Request.Context(), middleware.UserID(c), in, key)
	if err != nil {
		serviceError(c, err, ErrCodeUploadFailed)
		return
	}
	if replayed {
		c.Header("Idempotency-Replayed", "true")
		ok(c, http.StatusOK, "Video uploaded successfully", gin.H{"video": v})
		return
	}
	observeUpload(domain.BucketVideo, up)
	ok(c, http.StatusCreated, "Video uploaded successfully", gin.H{"video": v})
}

// CompleteVideo godoc
// @ID          completeVideo
// @Summary     Complete an upload
// @Description Makes a temporary video permanent and publicly listed. Completing twice yields 404.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
// @Param       id   path      string  true  "Video ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.SuccessResponse  "video"
// @Failure     404  {object}  handlers.ErrorResponse    "Video not found or already completed"
// @Router      /videos/{id}/complete [post]
func (h *Handlers) CompleteVideo(c *gin.Context) {
	v, err := h.videos.Complete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Video upload completed successfully", gin.H{"video": v})
}

// ListVideos godoc
// @ID          listVideos
// @Summary     Long-form feed
// @Description Completed videos longer than 60 seconds, newest first. Supports weak ETag via If-None-Match.
// @Tags        Videos
// @Produce     json
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
// @Param       limit          query   int     false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip           query   int     false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "count, total, videos"
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Router      /videos [get]
func (h *Handlers) ListVideos(c *gin.Context) { h.feed(c, false) }

// ListShorts godoc
// @ID          listShorts
// @Summary     Shorts feed
// @Description Completed videos of at most 60 seconds, newest first. Supports weak ETag via If-None-Match.
// @Tags        Videos
// @Produce     json
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
// @Param       limit          query   int     false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip           query   int     false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "count, total, videos"
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Router      /shorts [get]
func (h *Handlers) ListShorts(c *gin.Context) { h.feed(c, true) }

func (h *Handlers) feed(c *gin.Context, shorts bool) {
	ctx := c.Request.Context()
	limit, skip := pageParams(c, defaultPageSize)

	scope := "videos"
	if shorts {
		scope = "shorts"
	}
	// ETag pre-check (best effort).
	if count, latest, err := h.videos.FeedStats(ctx, shorts); err == nil {
		if notModified(c, "feed", scope+":"+strconv.Itoa(limit)+":"+strconv.Itoa(skip), count, latest) {
			return
		}
	}

	items, total, err := h.videos.Feed(ctx, shorts, limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": len(items), "total": total, "videos": items})
}

// MyVideos godoc
// @ID          myVideos
// @Summary     The caller's videos
// @Description Every video of the caller, in any status, newest first.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query  int  false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip   query  int  false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "count, total, videos"
// @Router      /videos/my-videos [get]
func (h *Handlers) MyVideos(c *gin.Context) {
	limit, skip := pageParams(c, defaultPageSize)
	items, total, err := h.videos.Mine(c.Request.Context(), middleware.UserID(c), limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": len(items), "total": total, "videos": items})
}

// GetVideo godoc
// @ID          getVideo
// @Summary     Get a completed video
// @Tags        Videos
// @Produce     json
// @Param       id   path      string  true  "Video ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.SuccessResponse  "video"
// @Failure     400  {object}  handlers.ErrorResponse    "Invalid id"
// @Failure     404  {object}  handlers.ErrorResponse    "Video not found"
// @Router      /videos/{id} [get]
func (h *Handlers) GetVideo(c *gin.Context) {
	v, err := h.videos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"video": v})
}
