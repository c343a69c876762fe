package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/pkg/response"
)

// Handler exposes the auth service HTTP surface: signup, login, logout,
// refresh and the plain user listing.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.POST("/refresh-token", h.Refresh)
	r.GET("/users", h.ListUsers)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pair, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameAlreadyExists) {
			response.Error(c, http.StatusConflict, "NAME_EXISTS", "Username already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Signup failed")
		return
	}

	response.Success(c, http.StatusOK, pair)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
		case errors.Is(err, ErrInvalidPassword):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid password")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, pair)
}

func (h *Handler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	message, err := h.service.Logout(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidRefreshToken) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid refresh token")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Logout failed")
		return
	}

	response.Success(c, http.StatusOK, MessageResponse{Message: message})
}

// Refresh answers 401 for every rejected token, whatever the reason.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	accessToken, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidRefreshToken) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token refresh failed")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Token refresh failed")
		return
	}

	response.Success(c, http.StatusOK, AccessTokenResponse{AccessToken: accessToken})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_USERS_FAILED", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, users)
}
