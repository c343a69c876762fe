package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/clients"
	"bookstore/internal/middleware"
	"bookstore/internal/pkg/permissions"
	"bookstore/internal/pkg/response"
)

// UserHandler proxies the auth endpoints through the facade. The role on
// signup is forced by the endpoint, never taken from the client, and the
// token pair is mirrored into cookies for browser clients.
type UserHandler struct {
	auth    AuthServiceClient
	cookies CookieConfig
}

func NewUserHandler(auth AuthServiceClient, cookies CookieConfig) *UserHandler {
	return &UserHandler{auth: auth, cookies: cookies}
}

func (h *UserHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/user/signup", h.SignupUser)
	r.POST("/admin/signup", h.SignupAdmin)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.POST("/refresh-token", h.Refresh)
}

func (h *UserHandler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users", middleware.RequirePermission(permissions.ViewUser), h.ListUsers)
}

func (h *UserHandler) SignupUser(c *gin.Context) {
	h.signup(c, "user")
}

func (h *UserHandler) SignupAdmin(c *gin.Context) {
	h.signup(c, "admin")
}

func (h *UserHandler) signup(c *gin.Context, forcedRole string) {
	var req clients.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	// Whatever role the client sent is discarded here.
	req.Role = forcedRole

	pair, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		h.replyAuthError(c, err, "Authentication failed or Username already exists")
		return
	}

	if pair.AccessToken == "" && pair.RefreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Access token or refresh token cannot be empty.")
		return
	}

	setTokenCookies(c, h.cookies, pair.AccessToken, pair.RefreshToken)
	response.Success(c, http.StatusOK, pair)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req clients.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.replyAuthError(c, err, "Authentication failed")
		return
	}

	if pair.AccessToken == "" && pair.RefreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Access token or refresh token cannot be empty.")
		return
	}

	setTokenCookies(c, h.cookies, pair.AccessToken, pair.RefreshToken)
	response.Success(c, http.StatusOK, pair)
}

func (h *UserHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.auth.Logout(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.replyAuthError(c, err, "Logout failed")
		return
	}

	clearTokenCookies(c, h.cookies)
	response.Success(c, http.StatusOK, result)
}

func (h *UserHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.replyAuthError(c, err, "Token refresh failed")
		return
	}

	setAccessCookie(c, h.cookies, result.AccessToken)
	response.Success(c, http.StatusOK, result)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context(), middleware.BearerFromContext(c))
	if err != nil {
		h.replyAuthError(c, err, "Failed to fetch users")
		return
	}
	if len(users) == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No users found.")
		return
	}
	response.Success(c, http.StatusOK, users)
}

// replyAuthError keeps the original facade posture: a downstream answer
// surfaces its message as 401, silence is a gateway timeout, anything else
// is internal.
func (h *UserHandler) replyAuthError(c *gin.Context, err error, fallback string) {
	switch ce := clients.As(err); ce.Kind {
	case clients.KindStatus:
		message := ce.Message
		if message == "" {
			message = fallback
		}
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
	case clients.KindNoResponse:
		response.Error(c, http.StatusGatewayTimeout, "GATEWAY_TIMEOUT", "No response from the auth server. Try again later.")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
