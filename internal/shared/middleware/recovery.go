package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", c.GetString(ContextKeyRequestID)).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Msg("Panic recovered")

				response.InternalServerError(c, "Internal server error")
			}
		}()

		c.Next()
	}
}
