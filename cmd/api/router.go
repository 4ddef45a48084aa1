package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"manual-backend/internal/shared/middleware"
	"manual-backend/pkg/container"
)

// maxUploadBytes bounds the base64 upload envelope (the transport
// limit; the pipeline has its own decoded-size check).
const maxUploadBytes = 50 << 20 // 50MB

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Root endpoint: API description
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "User Manual Content Management API",
			"version": c.Config.App.Version,
			"endpoints": gin.H{
				"content": "/api/content",
				"upload":  "/api/upload",
				"health":  "/api/health",
			},
		})
	})

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupContentRoutes(api, c)
		setupUploadRoutes(api, c)
	}

	// Catch-all for unmatched paths
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return router
}

// ========================================
// CONTENT ROUTES
// ========================================
func setupContentRoutes(api *gin.RouterGroup, c *container.Container) {
	contentGroup := api.Group("/content")
	{
		// Public routes
		contentGroup.GET("", c.ContentHandler.List)
		contentGroup.GET("/slug/:slug", c.ContentHandler.GetBySlug)
		contentGroup.GET("/:id", c.ContentHandler.GetByID)

		// Author routes (no auth by requirement)
		contentGroup.POST("", c.ContentHandler.Create)
		contentGroup.PUT("/:id", c.ContentHandler.Update)
		contentGroup.DELETE("/:id", c.ContentHandler.Delete)
		contentGroup.PATCH("/:id/toggle-publish", c.ContentHandler.TogglePublish)
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/upload", bodyLimit(maxUploadBytes), c.UploadHandler.Upload)
}

// bodyLimit caps the request body; oversized payloads fail at the
// transport boundary before reaching the pipeline.
func bodyLimit(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		ctx.Next()
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"success":   true,
			"message":   "API is running",
			"timestamp": time.Now().Format(time.RFC3339),
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(checkCtx); err != nil {
				dbStatus = "error"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(checkCtx); err != nil {
				redisStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["success"] = false
			statusCode = http.StatusServiceUnavailable
		}

		ctx.JSON(statusCode, health)
	}
}
