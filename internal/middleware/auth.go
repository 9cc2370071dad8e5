package middleware

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT. Токен обязателен.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := auth.ParsePrincipal(config.GetConfig().JWT.Secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuthMiddleware - как AuthMiddleware, но без заголовка запрос
// проходит анонимно. Невалидный токен все равно отклоняется.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := auth.ParsePrincipal(config.GetConfig().JWT.Secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

func setPrincipal(c *gin.Context, principal string) {
	c.Set(string(contextkeys.PrincipalContextKey), principal)
	ctx := logger.WithPrincipal(c.Request.Context(), principal)
	c.Request = c.Request.WithContext(ctx)
}

// GetPrincipal извлекает principal вызывающего из контекста.
// Пустая строка означает анонимный запрос.
func GetPrincipal(c *gin.Context) string {
	val, exists := c.Get(string(contextkeys.PrincipalContextKey))
	if !exists {
		return ""
	}

	principal, ok := val.(string)
	if !ok {
		return ""
	}

	return principal
}
