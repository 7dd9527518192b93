// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication. The account service
// issues HS256 JWTs carrying user_id and role; RequireAuth verifies them and
// exposes the identity to downstream handlers via the Gin context.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/petmatch/petmatch-server/internal/auth"
)

const (
	// userIDKey is the Gin context key for the authenticated user id (int64).
	userIDKey = "userID"
	// userRoleKey is the Gin context key for the authenticated role (string).
	userRoleKey = "userRole"
)

// RequireAuth verifies the Authorization bearer token and stores the caller's
// user id and role in the context. Missing header → 401; malformed, badly
// signed, or expired token → 401.
func RequireAuth(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "access denied: no token provided",
			})
			return
		}

		claims, err := v.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated caller has the given
// role. Must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFrom(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "forbidden",
				"message": "access denied",
			})
			return
		}
		c.Next()
	}
}

// UserIDFrom returns the authenticated user id, or 0 when unauthenticated.
func UserIDFrom(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RoleFrom returns the authenticated role, or "" when unauthenticated.
func RoleFrom(c *gin.Context) string {
	if v, ok := c.Get(userRoleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
