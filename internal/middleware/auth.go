package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/permissions"
	"bookstore/internal/pkg/response"
	"bookstore/internal/pkg/token"
)

const (
	ctxUserID      = "user_id"
	ctxUsername    = "username"
	ctxRole        = "role"
	ctxPermissions = "permissions"
)

// BearerAuth verifies the access token on each request and stores the
// claims plus the resolved permission set in the gin context. An unknown
// role still authenticates; it just resolves to an empty permission set.
func BearerAuth(verifier *token.Manager, resolver *permissions.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			return
		}

		claims, err := verifier.VerifyAccess(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxPermissions, resolver.Resolve(domain.UserRole(claims.Role)))

		c.Next()
	}
}

// RequirePermission gates one route on a single permission key. It assumes
// BearerAuth already ran.
func RequirePermission(key permissions.Key) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ctxPermissions)
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		set, _ := v.([]permissions.Key)
		if !permissions.Has(set, key) {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// BearerFromContext returns the raw Authorization header so composite
// operations can forward the caller's credential downstream.
func BearerFromContext(c *gin.Context) string {
	return c.GetHeader("Authorization")
}
