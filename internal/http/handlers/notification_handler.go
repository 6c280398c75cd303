// Notification HTTP handlers (auth).
//
//   - GET    /notifications               (ETag)
//   - GET    /notifications/unread-count
//   - PATCH  /notifications/read-all
//   - DELETE /notifications/clear
//   - PATCH  /notifications/:id/read
//   - DELETE /notifications/:id
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/http/middleware"
)

// ListNotifications godoc
// @ID          listNotifications
// @Summary     The caller's notifications
// @Description Newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
// @Param       unreadOnly     query   bool    false  "Only unread"
// @Param       limit          query   int     false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip           query   int     false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "notifications, unreadCount, totalCount"
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Router      /notifications [get]
func (h *Handlers) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	uid := middleware.UserID(c)
	limit, skip := pageParams(c, defaultPageSize)
	unreadOnly, _ := strconv.ParseBool(c.Query("unreadOnly"))

	// The unread count changes on mark-read without touching the newest
	// row, so it is part of the tag.
	if total, unread, latest, err := h.notifications.Stats(ctx, uid); err == nil {
		scope := uid + ":" + strconv.FormatInt(unread, 10) + ":" + strconv.FormatBool(unreadOnly) +
			":" + strconv.Itoa(limit) + ":" + strconv.Itoa(skip)
		if notModified(c, "notifications", scope, total, latest) {
			return
		}
	}

	p, err := h.notifications.List(ctx, uid, unreadOnly, limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{
		"notifications": p.Notifications,
		"unreadCount":   p.UnreadCount,
		"totalCount":    p.TotalCount,
	})
}

// UnreadNotificationCount godoc
// @ID          unreadNotificationCount
// @Summary     Number of unread notifications
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.SuccessResponse  "unreadCount"
// @Router      /notifications/unread-count [get]
func (h *Handlers) UnreadNotificationCount(c *gin.Context) {
	n, err := h.notifications.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"unreadCount": n})
}

// MarkNotificationRead godoc
// @ID          markNotificationRead
// @Summary     Mark one notification read
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id   path      string  true  "Notification ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.SuccessResponse  "notification"
// @Failure     404  {object}  handlers.ErrorResponse    "Notification not found"
// @Router      /notifications/{id}/read [patch]
func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	n, err := h.notifications.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Notification marked as read", gin.H{"notification": n})
}

// MarkAllNotificationsRead godoc
// @ID          markAllNotificationsRead
// @Summary     Mark every notification read
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.SuccessResponse  "modifiedCount"
// @Router      /notifications/read-all [patch]
func (h *Handlers) MarkAllNotificationsRead(c *gin.Context) {
	n, err := h.notifications.MarkAllRead(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "All notifications marked as read", gin.H{"modifiedCount": n})
}

// DeleteNotification godoc
// @ID          deleteNotification
// @Summary     Delete one notification
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id   path      string  true  "Notification ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Notification not found"
// @Router      /notifications/{id} [delete]
func (h *Handlers) DeleteNotification(c *gin.Context) {
	if err := h.notifications.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Notification deleted", nil)
}

// ClearNotifications godoc
// @ID          clearNotifications
// @Summary     Delete every notification
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.SuccessResponse  "deletedCount"
// @Router      /notifications/clear [delete]
func (h *Handlers) ClearNotifications(c *gin.Context) {
	n, err := h.notifications.Clear(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "All notifications cleared", gin.H{"deletedCount": n})
}
