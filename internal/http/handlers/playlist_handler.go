// Playlist HTTP handlers.
//
//   - POST   /playlists                          (auth)
//   - GET    /playlists/my-playlists             (auth)
//   - GET    /playlists/user/:userId
//   - GET    /playlists/:id                      (optional auth)
//   - PUT    /playlists/:id                      (auth, owner)
//   - DELETE /playlists/:id                      (auth, owner)
//   - POST   /playlists/:id/videos/:videoId      (auth, owner)
//   - DELETE /playlists/:id/videos/:videoId      (auth, owner)
//   - PUT    /playlists/:id/reorder              (auth, owner)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/http/middleware"
	"github.com/tbourn/go-video-backend/internal/services"
)

// CreatePlaylistRequest is the JSON payload for a new playlist.
type CreatePlaylistRequest struct {
	Title       string `json:"title"       example:"Weekend watch list"`
	Description string `json:"description" example:"Long talks for Saturday"`
	Visibility  string `json:"visibility"  example:"public" enums:"public,private,unlisted"`
}

// UpdatePlaylistRequest changes only the fields that are present.
type UpdatePlaylistRequest struct {
	Title       *string `json:"title"       example:"Renamed"`
	Description *string `json:"description"`
	Visibility  *string `json:"visibility"  example:"private" enums:"public,private,unlisted"`
}

// ReorderPlaylistRequest lists the playlist's video IDs in their new order.
// Unknown IDs are ignored and videos left out are removed.
type ReorderPlaylistRequest struct {
	VideoIDs []string `json:"videoIds"`
}

// CreatePlaylist godoc
// @ID          createPlaylist
// @Summary     Create a playlist
// @Tags        Playlists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.CreatePlaylistRequest  true  "Playlist"
// @Success     201   {object}  handlers.SuccessResponse  "playlist"
// @Failure     400   {object}  handlers.ErrorResponse    "Bad request"
// @Router      /playlists [post]
func (h *Handlers) CreatePlaylist(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	p, err := h.playlists.Create(c.Request.Context(), middleware.UserID(c), services.PlaylistInput{
		Title:       req.Title,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusCreated, "Playlist created successfully", gin.H{"playlist": p})
}

// MyPlaylists godoc
// @ID          myPlaylists
// @Summary     The caller's playlists
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.SuccessResponse  "count, playlists"
// @Router      /playlists/my-playlists [get]
func (h *Handlers) MyPlaylists(c *gin.Context) {
	items, err := h.playlists.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": len(items), "playlists": items})
}

// UserPlaylists godoc
// @ID          userPlaylists
// @Summary     A user's public playlists
// @Tags        Playlists
// @Produce     json
// @Param       userId  path      string  true  "User ID (UUID)"  format(uuid)
// @Success     200     {object}  handlers.SuccessResponse  "count, playlists"
// @Failure     400     {object}  handlers.ErrorResponse    "Invalid id"
// @Router      /playlists/user/{userId} [get]
func (h *Handlers) UserPlaylists(c *gin.Context) {
	items, err := h.playlists.ByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": len(items), "playlists": items})
}

// GetPlaylist godoc
// @ID          getPlaylist
// @Summary     Get a playlist with its videos
// @Description Private playlists are visible to their owner only.
// @Tags        Playlists
// @Produce     json
// @Param       id   path      string  true  "Playlist ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.SuccessResponse  "playlist"
// @Failure     403  {object}  handlers.ErrorResponse    "Private playlist"
// @Failure     404  {object}  handlers.ErrorResponse    "Playlist not found"
// @Router      /playlists/{id} [get]
func (h *Handlers) GetPlaylist(c *gin.Context) {
	p, err := h.playlists.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"playlist": p})
}

// UpdatePlaylist godoc
// @ID          updatePlaylist
// @Summary     Update a playlist
// @Tags        Playlists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path      string                          true  "Playlist ID (UUID)"  format(uuid)
// @Param       body  body      handlers.UpdatePlaylistRequest  true  "Fields to change"
// @Success     200   {object}  handlers.SuccessResponse  "playlist"
// @Failure     403   {object}  handlers.ErrorResponse    "Not the owner"
// @Failure     404   {object}  handlers.ErrorResponse    "Playlist not found"
// @Router      /playlists/{id} [put]
func (h *Handlers) UpdatePlaylist(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	p, err := h.playlists.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), services.PlaylistPatch{
		Title:       req.Title,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Playlist updated successfully", gin.H{"playlist": p})
}

// DeletePlaylist godoc
// @ID          deletePlaylist
// @Summary     Delete a playlist
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
// @Param       id   path      string  true  "Playlist ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     403  {object}  handlers.ErrorResponse  "Not the owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Playlist not found"
// @Router      /playlists/{id} [delete]
func (h *Handlers) DeletePlaylist(c *gin.Context) {
	if err := h.playlists.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Playlist deleted successfully", nil)
}

// AddToPlaylist godoc
// @ID          addToPlaylist
// @Summary     Append a video to a playlist
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
// @Param       id       path      string  true  "Playlist ID (UUID)"  format(uuid)
// @Param       videoId  path      string  true  "Video ID (UUID)"     format(uuid)
// @Success     200      {object}  handlers.SuccessResponse  "playlist"
// @Failure     409      {object}  handlers.ErrorResponse    "Already in playlist"
// @Router      /playlists/{id}/videos/{videoId} [post]
func (h *Handlers) AddToPlaylist(c *gin.Context) {
	p, err := h.playlists.AddVideo(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("videoId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Video added to playlist", gin.H{"playlist": p})
}

// RemoveFromPlaylist godoc
// @ID          removeFromPlaylist
// @Summary     Remove a video from a playlist
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
// @Param       id       path      string  true  "Playlist ID (UUID)"  format(uuid)
// @Param       videoId  path      string  true  "Video ID (UUID)"     format(uuid)
// @Success     200      {object}  handlers.SuccessResponse  "playlist"
// @Failure     404      {object}  handlers.ErrorResponse    "Not in playlist"
// @Router      /playlists/{id}/videos/{videoId} [delete]
func (h *Handlers) RemoveFromPlaylist(c *gin.Context) {
	p, err := h.playlists.RemoveVideo(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("videoId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Video removed from playlist", gin.H{"playlist": p})
}

// ReorderPlaylist godoc
// @ID          reorderPlaylist
// @Summary     Reorder a playlist
// @Tags        Playlists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path      string                           true  "Playlist ID (UUID)"  format(uuid)
// @Param       body  body      handlers.ReorderPlaylistRequest  true  "New order"
// @Success     200   {object}  handlers.SuccessResponse  "playlist"
// @Failure     400   {object}  handlers.ErrorResponse    "Bad request"
// @Router      /playlists/{id}/reorder [put]
func (h *Handlers) ReorderPlaylist(c *gin.Context) {
	var req ReorderPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	p, err := h.playlists.Reorder(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.VideoIDs)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Playlist reordered successfully", gin.H{"playlist": p})
}
