// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file authenticates bearer tokens. Auth rejects requests without a
// valid token; OptionalAuth identifies the caller when it can and lets
// anonymous requests through. Both store the user ID under the "userID"
// Gin key, which the logger, rate limiter and handlers read.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxUserIDKey = "userID"

// TokenVerifier resolves a bearer token to a user ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// Auth requires a valid bearer token.
func Auth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearer(c)
		if tok == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		uid, err := v.Verify(tok)
		if err != nil {
			LoggerFrom(c).Debug().Err(err).Msg("auth: token rejected")
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set(ctxUserIDKey, uid)
		c.Next()
	}
}

// OptionalAuth sets the user ID when a valid token is present. Invalid
// tokens are treated as anonymous.
func OptionalAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearer(c); tok != "" {
			if uid, err := v.Verify(tok); err == nil {
				c.Set(ctxUserIDKey, uid)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user ID, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":    false,
		"request_id": GetRequestID(c),
		"code":       "unauthorized",
		"message":    msg,
	})
}
