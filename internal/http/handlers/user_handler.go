// User HTTP handlers.
//
//   - POST  /users/register
//   - POST  /users/login
//   - GET   /users/me       (auth)
//   - PATCH /users/avatar   (auth, multipart "avatar")
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/auth"
	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/http/middleware"
)

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Fullname string `json:"fullname" example:"Jane Doe"`
	Username string `json:"username" example:"jane_doe"`
	Email    string `json:"email"    example:"jane@example.com"`
	Password string `json:"password" example:"S3cure!pass"`
}

// LoginRequest accepts either an email or a username in Login.
type LoginRequest struct {
	Login    string `json:"login"    example:"jane@example.com"`
	Email    string `json:"email"    example:"jane@example.com"`
	Username string `json:"username" example:"jane_doe"`
	Password string `json:"password" binding:"required" example:"S3cure!pass"`
}

// Register godoc
// @ID          registerUser
// @Summary     Create an account
// @Description Validates the fields, stores a bcrypt hash and returns the user with a bearer token.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.RegisterRequest  true  "Account details"
// @Success     201   {object}  handlers.SuccessResponse  "user, token, expiresAt"
// @Failure     400   {object}  handlers.ErrorResponse    "Validation failed"
// @Failure     409   {object}  handlers.ErrorResponse    "Username or email taken"
// @Router      /users/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	sess, err := h.users.Register(c.Request.Context(), auth.Registration{
		Fullname: req.Fullname,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":      sess.User,
		"token":     sess.Token,
		"expiresAt": sess.ExpiresAt,
	})
}

// Login godoc
// @ID          loginUser
// @Summary     Log in
// @Description Exchanges an email or username and a password for a bearer token.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.LoginRequest     true  "Credentials"
// @Success     200   {object}  handlers.SuccessResponse  "user, token, expiresAt"
// @Failure     400   {object}  handlers.ErrorResponse    "Bad request"
// @Failure     401   {object}  handlers.ErrorResponse    "Invalid credentials"
// @Router      /users/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "password required")
		return
	}
	login := req.Login
	if login == "" {
		login = req.Email
	}
	if login == "" {
		login = req.Username
	}
	if login == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email or username required")
		return
	}
	sess, err := h.users.Login(c.Request.Context(), login, req.Password)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "Login successful", gin.H{
		"user":      sess.User,
		"token":     sess.Token,
		"expiresAt": sess.ExpiresAt,
	})
}

// Me godoc
// @ID          currentUser
// @Summary     Current user
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.SuccessResponse  "user"
// @Failure     401  {object}  handlers.ErrorResponse    "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse    "User not found"
// @Router      /users/me [get]
func (h *Handlers) Me(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"user": u})
}

// UpdateAvatar godoc
// @ID          updateAvatar
// @Summary     Replace the profile image
// @Tags        Users
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       avatar  formData  file  true  "Image file"
// @Success     200  {object}  handlers.SuccessResponse  "user"
// @Failure     400  {object}  handlers.ErrorResponse    "Missing file"
// @Failure     413  {object}  handlers.ErrorResponse    "Too large"
// @Router      /users/avatar [patch]
func (h *Handlers) UpdateAvatar(c *gin.Context) {
	up, f, err := formUpload(c, "avatar")
	if err != nil {
		badForm(c, err)
		return
	}
	if up == nil {
		fail(c, http.StatusBadRequest, ErrCodeMissingFile, "avatar file is required")
		return
	}
	defer f.Close()

	u, err := h.users.UpdateAvatar(c.Request.Context(), middleware.UserID(c), *up)
	if err != nil {
		serviceError(c, err, ErrCodeUploadFailed)
		return
	}
	observeUpload(domain.BucketProfile, up)
	ok(c, http.StatusOK, "Avatar updated successfully", gin.H{"user": u})
}
