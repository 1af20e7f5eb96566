package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/jwt"
)

const (
	ContextKeySubject = "subject"
	ContextKeyRole    = "role"
)

// AuthMiddleware requires a valid bearer access token
func AuthMiddleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := tokens.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(ContextKeyRequestID)).Msg("token rejected")
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}
