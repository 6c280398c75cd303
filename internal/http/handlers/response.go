// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response envelope shared by every endpoint.
//
// Success:
//
//	HTTP/1.1 200 OK
//	{ "success": true, "message": "Video liked successfully", "likes": 3 }
//
// Failure:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "success": false,
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "video not found"
//	}
//
// The "error" member carries internal detail and is only present when error
// details are enabled (development).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/auth"
	"github.com/tbourn/go-video-backend/internal/http/middleware"
	"github.com/tbourn/go-video-backend/internal/services"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	Success bool `json:"success" example:"false"`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"video not found"`
	// Internal detail, development only
	Error string `json:"error,omitempty"`
	// Per-field validation failures
	Fields []auth.FieldError `json:"fields,omitempty"`
}

// SuccessResponse documents the success envelope. Handlers merge their
// payload keys (video, videos, count, ...) into the same object.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Video uploaded successfully"`
}

func requestID(c *gin.Context) string {
	if rid := middleware.GetRequestID(c); rid != "" {
		return rid
	}
	return c.Writer.Header().Get("X-Request-ID")
}

// abort writes resp and logs server-side failures with the request logger.
func abort(c *gin.Context, status int, resp ErrorResponse, cause error) {
	resp.Success = false
	resp.RequestID = requestID(c)
	if cause != nil && middleware.ErrorDetailsEnabled(c) {
		resp.Error = cause.Error()
	}

	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", resp.Code).
			Str("message", resp.Message)
		if cause != nil {
			ev = ev.Err(cause)
		}
		ev.Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// fail aborts the request with a structured error.
func fail(c *gin.Context, status int, code, msg string) {
	abort(c, status, ErrorResponse{Code: code, Message: msg}, nil)
}

// Fail is the exported variant of fail, used by the router for 404/405.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// serviceError maps a service error onto the envelope by its kind. Errors
// of no known kind become a 500 with the given code.
func serviceError(c *gin.Context, err error, code string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		abort(c, http.StatusBadRequest, ErrorResponse{
			Code:    ErrCodeValidation,
			Message: ve.Error(),
			Fields:  ve.Fields,
		}, nil)
	case errors.Is(err, services.ErrInvalidID):
		fail(c, http.StatusBadRequest, ErrCodeInvalidID, err.Error())
	case errors.Is(err, services.ErrMissingFile):
		fail(c, http.StatusBadRequest, ErrCodeMissingFile, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		fail(c, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		if code == "" {
			code = ErrCodeInternal
		}
		abort(c, http.StatusInternalServerError, ErrorResponse{
			Code:    code,
			Message: "internal server error",
		}, err)
	}
}

// ok writes the success envelope with payload merged in.
func ok(c *gin.Context, status int, msg string, payload gin.H) {
	body := gin.H{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
