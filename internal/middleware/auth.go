package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"expensia/internal/auth"
	"expensia/internal/models"
)

// UserResolver resolves a user ID to a stored user record.
type UserResolver interface {
	GetUserByID(id uint) (*models.User, error)
}

// Auth returns a Gin middleware that verifies the bearer session token and
// re-resolves the claimed user against the credential store. The store
// lookup means a deleted account is denied immediately even while its
// tokens are still unexpired. On success the resolved user ID and email are
// set in the context.
func Auth(issuer *auth.TokenIssuer, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Authorization header is required",
			}})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			}})
			c.Abort()
			return
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "INVALID_TOKEN",
				"message": "Invalid or expired token",
			}})
			c.Abort()
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "INVALID_TOKEN",
				"message": "Invalid or expired token",
			}})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Next()
	}
}
