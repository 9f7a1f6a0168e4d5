package middleware

import (
	"net/http"
	"strings"

	"backend/internal/repository"
	"backend/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserContextKey is the gin context key under which the authenticated user is stored.
const UserContextKey = "user"

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(codec *token.Codec, users repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>"})
			c.Abort()
			return
		}

		userID, err := codec.Verify(parts[1])
		if err != nil {
			// Expired and forged tokens get the same response, so the reply
			// reveals nothing about token structure
			logger.Debug("Rejected session token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := users.GetUserByID(userID)
		if err != nil {
			// A still-valid token for a deleted account is unauthorized too
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)

		c.Next()
	}
}
