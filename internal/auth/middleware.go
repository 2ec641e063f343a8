package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// claimsKey is the gin context key under which Authenticate stores the
// verified Claims.
const claimsKey = "authClaims"

// Authenticate verifies the Authorization header's Bearer token when one
// is present. Requests without a valid token proceed anonymously; the
// Require* guards decide per route whether that is acceptable.
func (m *TokenManager) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "" {
			tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if claims, err := m.VerifyToken(tokenString); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the verified claims for the request, if any.
func CurrentUser(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// RequireLogin rejects anonymous requests with 401.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and logged-in
// non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// RequireAdminOrSelf rejects the request unless the caller is an admin or
// the user named by the given route parameter.
func RequireAdminOrSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !claims.IsAdmin && claims.Username != c.Param(param) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
