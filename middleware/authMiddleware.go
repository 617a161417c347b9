package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	helper "github.com/ahmed-shaon/tasty-kitchen-server/helpers"
)

// Authentication verifies the bearer token on the Authorization header and
// puts the caller identity into the request context for the handlers
// behind it.
func Authentication(tm *helper.TokenMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no authorization header provided"})
			return
		}

		// Header is expected as "Bearer <token>"; tolerate a bare token.
		clientToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := tm.ValidateToken(clientToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
