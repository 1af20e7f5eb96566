package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/jwt"
)

// AdminMiddleware must run after AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextKeyRole) != jwt.RoleAdmin {
			response.Forbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}
