package middleware

import (
	"net/http"
	"strings"

	"giglink_backend/internal/auth"
	"giglink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey      = "userID"
	ContextProfileTypeKey = "profileType"
)

// AuthMiddleware validates the Bearer token and stores the caller's identity
// in both the gin context and the request context (for log correlation).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextProfileTypeKey, claims.ProfileType)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID returns the authenticated user's ID, empty when anonymous.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetProfileType returns the caller's profile type claim, empty when
// anonymous.
func GetProfileType(c *gin.Context) string {
	v, exists := c.Get(ContextProfileTypeKey)
	if !exists {
		return ""
	}
	t, ok := v.(string)
	if !ok {
		return ""
	}
	return t
}
