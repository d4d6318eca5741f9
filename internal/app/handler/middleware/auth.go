package middleware

import (
	"net/http"
	"strings"

	"space_ships/internal/app/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет JWT и допустимые роли. Пустой ключ отключает проверку.
func AuthMiddleware(key []byte, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(key) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := utils.ParseJWT(key, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("role", claims.Role)

		if len(allowedRoles) > 0 {
			allowed := false
			for _, r := range allowedRoles {
				if r == claims.Role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied for role: " + claims.Role})
				return
			}
		}

		c.Next()
	}
}
