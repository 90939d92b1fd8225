package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"publishing-backend/internal/shared/middleware"
	"publishing-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupAuthorRoutes(api, c)
		setupTitleRoutes(api, c)
		setupBannerRoutes(api, c)
		setupHomepageRoutes(api, c)
		setupExportRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.AuthorHandler.Register)
		auth.POST("/login", c.AuthorHandler.Login)
		auth.GET("/profile",
			middleware.Auth(c.JWTManager, c.AuthorRepo),
			c.AuthorHandler.Profile,
		)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
// Reads are public (active records only); mutations and the full
// listing require the admin guard.
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := middleware.AdminAuth(c.JWTManager, c.AuthorRepo)

	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/all", admin, c.AuthorHandler.ListAll)
		authors.GET("/:id", c.AuthorHandler.Get)
		authors.POST("", admin, c.AuthorHandler.Create)
		authors.PUT("/:id", admin, c.AuthorHandler.Update)
		authors.DELETE("/:id", admin, c.AuthorHandler.Delete)
		authors.POST("/bulk/visibility", admin, c.AuthorHandler.BulkVisibility)
	}
}

// ========================================
// TITLE ROUTES
// ========================================
func setupTitleRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := middleware.AdminAuth(c.JWTManager, c.AuthorRepo)

	titles := api.Group("/titles")
	{
		titles.GET("", c.TitleHandler.List)
		titles.GET("/:id", c.TitleHandler.Get)
		titles.POST("", admin, c.TitleHandler.Create)
		titles.PUT("/:id", admin, c.TitleHandler.Update)
		titles.DELETE("/:id", admin, c.TitleHandler.Delete)
	}
}

// ========================================
// BANNER ROUTES
// ========================================
func setupBannerRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := middleware.AdminAuth(c.JWTManager, c.AuthorRepo)

	banners := api.Group("/banners")
	{
		banners.GET("", c.BannerHandler.List)
		banners.GET("/:id", admin, c.BannerHandler.Get)
		banners.POST("", admin, c.BannerHandler.Create)
		banners.PUT("/:id", admin, c.BannerHandler.Update)
		banners.DELETE("/:id", admin, c.BannerHandler.Delete)
	}
}

// ========================================
// HOMEPAGE ROUTES
// ========================================
func setupHomepageRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := middleware.AdminAuth(c.JWTManager, c.AuthorRepo)

	homepage := api.Group("/homepage")
	{
		homepage.GET("", c.HomepageHandler.List)
		homepage.GET("/type/:type", c.HomepageHandler.ListByType)
		homepage.GET("/:id", admin, c.HomepageHandler.Get)
		homepage.POST("", admin, c.HomepageHandler.Create)
		homepage.PUT("/:id", admin, c.HomepageHandler.Update)
		homepage.DELETE("/:id", admin, c.HomepageHandler.Delete)
	}
}

// ========================================
// EXPORT ROUTES (admin only)
// ========================================
func setupExportRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := middleware.AdminAuth(c.JWTManager, c.AuthorRepo)

	exports := api.Group("/exports")
	exports.Use(admin)
	{
		exports.GET("/authors", c.ExportHandler.Authors)
		exports.GET("/titles", c.ExportHandler.Titles)
		exports.GET("/authors-with-titles", c.ExportHandler.AuthorsWithTitles)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}
		services := gin.H{}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "down"
			health["status"] = "degraded"
		}
		services["database"] = dbStatus

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = "down"
			health["status"] = "degraded"
		}
		services["redis"] = redisStatus

		health["services"] = services

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
