package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/permissions"
	"bookstore/internal/pkg/token"
)

func setupProtectedRouter(t *testing.T) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := token.NewManager("access-secret", "refresh-secret", "bookstore-auth", 15*time.Minute, 168*time.Hour)
	resolver := permissions.NewResolver()

	router := gin.New()
	protected := router.Group("/")
	protected.Use(BearerAuth(manager, resolver))
	protected.POST("/books", RequirePermission(permissions.PostBook), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	protected.GET("/books", RequirePermission(permissions.ViewBook), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, manager
}

func doRequest(router *gin.Engine, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func accessTokenFor(t *testing.T, manager *token.Manager, role domain.UserRole) string {
	t.Helper()
	signed, err := manager.GenerateAccessToken(&domain.User{
		ID:    1,
		Name:  "bob",
		Email: "bob@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return signed
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	router, _ := setupProtectedRouter(t)

	w := doRequest(router, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing Authorization header")
}

func TestBearerAuth_WrongScheme(t *testing.T) {
	router, _ := setupProtectedRouter(t)

	w := doRequest(router, http.MethodGet, "/books", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Authorization header")
}

func TestBearerAuth_EmptyToken(t *testing.T) {
	router, _ := setupProtectedRouter(t)

	w := doRequest(router, http.MethodGet, "/books", "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Empty token")
}

func TestBearerAuth_GarbageToken(t *testing.T) {
	router, _ := setupProtectedRouter(t)

	w := doRequest(router, http.MethodGet, "/books", "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestBearerAuth_WrongSecret(t *testing.T) {
	router, _ := setupProtectedRouter(t)

	other := token.NewManager("other-secret", "refresh-secret", "bookstore-auth", 15*time.Minute, 168*time.Hour)
	signed := accessTokenFor(t, other, domain.RoleAdmin)

	w := doRequest(router, http.MethodGet, "/books", "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuth_RefreshTokenRejectedOnAccessPath(t *testing.T) {
	router, manager := setupProtectedRouter(t)

	refresh, _, err := manager.GenerateRefreshToken(1)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/books", "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermission_AdminCanPostBook(t *testing.T) {
	router, manager := setupProtectedRouter(t)

	signed := accessTokenFor(t, manager, domain.RoleAdmin)

	w := doRequest(router, http.MethodPost, "/books", "Bearer "+signed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequirePermission_UserCannotPostBook(t *testing.T) {
	router, manager := setupProtectedRouter(t)

	signed := accessTokenFor(t, manager, domain.RoleUser)

	w := doRequest(router, http.MethodPost, "/books", "Bearer "+signed)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestRequirePermission_UserCanViewBook(t *testing.T) {
	router, manager := setupProtectedRouter(t)

	signed := accessTokenFor(t, manager, domain.RoleUser)

	w := doRequest(router, http.MethodGet, "/books", "Bearer "+signed)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermission_UnknownRoleGetsNothing(t *testing.T) {
	router, manager := setupProtectedRouter(t)

	signed := accessTokenFor(t, manager, domain.UserRole("auditor"))

	w := doRequest(router, http.MethodGet, "/books", "Bearer "+signed)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermission_WithoutAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/books", RequirePermission(permissions.ViewBook), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doRequest(router, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}
