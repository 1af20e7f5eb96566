package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	libraryHandler "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/handler"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/middleware"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		cors.New(corsConfig()),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		libraryHandler.RegisterRoutes(v1, c.Handlers,
			middleware.AuthMiddleware(c.JWTManager),
			middleware.AdminMiddleware(),
		)
	}

	return router
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID, "Content-Disposition"}
	return cfg
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		if err := c.Ping(pingCtx); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "DB_UNAVAILABLE", err.Error())
			return
		}

		response.OK(ctx, gin.H{
			"status":  "ok",
			"store":   c.Config.Library.Store,
			"version": c.Config.App.Version,
		})
	}
}
