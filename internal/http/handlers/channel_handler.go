// Channel HTTP handlers.
//
//   - POST /channels                 (auth, multipart: name, optional avatar)
//   - GET  /channels/:id
//   - GET  /channels/handle/:handle
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/http/middleware"
)

// CreateChannel godoc
// @ID          createChannel
// @Summary     Create the caller's channel
// @Description The handle is copied from the username. A user owns at most one channel.
// @Tags        Channels
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       name    formData  string  true   "Channel name (max 50)"
// @Param       avatar  formData  file    false  "Channel image"
// @Success     201  {object}  handlers.SuccessResponse  "channel"
// @Failure     400  {object}  handlers.ErrorResponse    "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse    "User already has a channel"
// @Router      /channels [post]
func (h *Handlers) CreateChannel(c *gin.Context) {
	up, f, err := formUpload(c, "avatar")
	if err != nil {
		badForm(c, err)
		return
	}
	if f != nil {
		defer f.Close()
	}

	ch, err := h.channels.Create(c.Request.Context(), middleware.UserID(c), c.PostForm("name"), up)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	observeUpload(domain.BucketProfile, up)
	ok(c, http.StatusCreated, "Channel created successfully", gin.H{"channel": ch})
}

// GetChannel godoc
// @ID          getChannel
// @Summary     Get a channel by ID
// @Tags        Channels
// @Produce     json
// @Param       id   path      string  true  "Channel ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.SuccessResponse  "channel"
// @Failure     400  {object}  handlers.ErrorResponse    "Invalid id"
// @Failure     404  {object}  handlers.ErrorResponse    "Channel not found"
// @Router      /channels/{id} [get]
func (h *Handlers) GetChannel(c *gin.Context) {
	ch, err := h.channels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"channel": ch})
}

// GetChannelByHandle godoc
// @ID          getChannelByHandle
// @Summary     Get a channel by handle
// @Tags        Channels
// @Produce     json
// @Param       handle  path      string  true  "Handle, with or without a leading @"
// @Success     200     {object}  handlers.SuccessResponse  "channel"
// @Failure     404     {object}  handlers.ErrorResponse    "Channel not found"
// @Router      /channels/handle/{handle} [get]
func (h *Handlers) GetChannelByHandle(c *gin.Context) {
	ch, err := h.channels.GetByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"channel": ch})
}
