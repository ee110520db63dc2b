package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jewelpos/internal/service"
)

const ContextKeyClaims = "session_claims"

// AuthMiddleware returns Gin middleware that validates the operator session
// token and injects its claims.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired session"},
			})
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}
