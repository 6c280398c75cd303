// Subscription HTTP handlers.
//
//   - POST   /subscriptions/:channelId                        (auth)
//   - DELETE /subscriptions/:channelId                        (auth)
//   - GET    /subscriptions/my-subscriptions                  (auth)
//   - GET    /subscriptions/check/:channelId                  (auth)
//   - PATCH  /subscriptions/:channelId/notify                 (auth)
//   - GET    /subscriptions/channel/:channelId/subscribers
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/http/middleware"
)

// SubscribeRequest is the optional JSON payload of Subscribe.
type SubscribeRequest struct {
	Tier string `json:"tier" example:"free" enums:"free,premium"`
}

// Subscribe godoc
// @ID          subscribe
// @Summary     Subscribe to a channel
// @Tags        Subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       channelId  path      string                     true   "Channel ID (UUID)"  format(uuid)
// @Param       body       body      handlers.SubscribeRequest  false  "Tier (default free)"
// @Success     201        {object}  handlers.SuccessResponse   "subscription"
// @Failure     400        {object}  handlers.ErrorResponse     "Own channel"
// @Failure     404        {object}  handlers.ErrorResponse     "Channel not found"
// @Failure     409        {object}  handlers.ErrorResponse     "Already subscribed"
// @Router      /subscriptions/{channelId} [post]
func (h *Handlers) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	sub, err := h.subscriptions.Subscribe(c.Request.Context(), middleware.UserID(c), c.Param("channelId"), req.Tier)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusCreated, "Subscribed successfully", gin.H{"subscription": sub})
}

// Unsubscribe godoc
// @ID          unsubscribe
// @Summary     Unsubscribe from a channel
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       channelId  path      string  true  "Channel ID (UUID)"  format(uuid)
// @Success     200        {object}  handlers.SuccessResponse
// @Failure     404        {object}  handlers.ErrorResponse  "Subscription not found"
// @Router      /subscriptions/{channelId} [delete]
func (h *Handlers) Unsubscribe(c *gin.Context) {
	if err := h.subscriptions.Unsubscribe(c.Request.Context(), middleware.UserID(c), c.Param("channelId")); err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Unsubscribed successfully", nil)
}

// ToggleSubscriptionNotify godoc
// @ID          toggleSubscriptionNotify
// @Summary     Toggle upload notifications for a subscription
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       channelId  path      string  true  "Channel ID (UUID)"  format(uuid)
// @Success     200        {object}  handlers.SuccessResponse  "notify"
// @Failure     404        {object}  handlers.ErrorResponse    "Subscription not found"
// @Router      /subscriptions/{channelId}/notify [patch]
func (h *Handlers) ToggleSubscriptionNotify(c *gin.Context) {
	notify, err := h.subscriptions.ToggleNotify(c.Request.Context(), middleware.UserID(c), c.Param("channelId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	msg := "Notifications disabled"
	if notify {
		msg = "Notifications enabled"
	}
	ok(c, http.StatusOK, msg, gin.H{"notify": notify})
}

// CheckSubscription godoc
// @ID          checkSubscription
// @Summary     Whether the caller is subscribed to a channel
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       channelId  path      string  true  "Channel ID (UUID)"  format(uuid)
// @Success     200        {object}  handlers.SuccessResponse  "isSubscribed"
// @Router      /subscriptions/check/{channelId} [get]
func (h *Handlers) CheckSubscription(c *gin.Context) {
	subscribed, err := h.subscriptions.IsSubscribed(c.Request.Context(), middleware.UserID(c), c.Param("channelId"))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"isSubscribed": subscribed})
}

// MySubscriptions godoc
// @ID          mySubscriptions
// @Summary     Channels the caller is subscribed to
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.SuccessResponse  "count, subscriptions"
// @Router      /subscriptions/my-subscriptions [get]
func (h *Handlers) MySubscriptions(c *gin.Context) {
	subs, err := h.subscriptions.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": len(subs), "subscriptions": subs})
}

// ChannelSubscribers godoc
// @ID          channelSubscribers
// @Summary     A channel's subscribers
// @Tags        Subscriptions
// @Produce     json
// @Param       channelId  path   string  true   "Channel ID (UUID)"  format(uuid)
// @Param       limit      query  int     false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip       query  int     false  "Offset"     minimum(0) default(0)
// @Success     200        {object}  handlers.SuccessResponse  "count, total, subscribers"
// @Failure     404        {object}  handlers.ErrorResponse    "Channel not found"
// @Router      /subscriptions/channel/{channelId}/subscribers [get]
func (h *Handlers) ChannelSubscribers(c *gin.Context) {
	limit, skip := pageParams(c, defaultPageSize)
	p, err := h.subscriptions.Subscribers(c.Request.Context(), c.Param("channelId"), limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"count": p.Count, "total": p.Total, "subscribers": p.Subscribers})
}
