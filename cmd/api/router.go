package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	identitymodel "eventgallery-backend/internal/domains/identity/model"
	"eventgallery-backend/internal/shared/middleware"
	"eventgallery-backend/pkg/container"
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

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupGuestAuthRoutes(v1, c)
		setupAdminRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupCustomerImageRoutes(v1, c)
		setupShareLinkRoutes(v1, c)
		setupGuestRoutes(v1, c)
	}

	return router
}

// ========================================
// CUSTOMER AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.CustomerHandler.Register)
		auth.POST("/login", c.CustomerHandler.Login)
	}
}

// ========================================
// GUEST AUTH ROUTES
// ========================================
func setupGuestAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	guestAuth := v1.Group("/guest-auth")
	{
		guestAuth.POST("/join", c.GuestHandler.Join)
		guestAuth.POST("/login", c.GuestHandler.Login)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	{
		admin.POST("/login", c.AdminHandler.Login)
	}

	adminProtected := v1.Group("/admin")
	adminProtected.Use(middleware.Authenticate(c.IdentityResolver, identitymodel.ChannelAdmin))
	{
		adminProtected.GET("/stats", c.AdminHandler.Stats)
	}
}

// ========================================
// PUBLIC ROUTES
// ========================================
// No credential needed: the event join page and shared galleries
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/public/events/:code", c.EventHandler.GetPublicByCode)
	v1.GET("/shared/:code", c.ShareHandler.Resolve)
}

// ========================================
// EVENT ROUTES (CUSTOMER)
// ========================================
func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	events.Use(middleware.Authenticate(c.IdentityResolver, identitymodel.ChannelCustomer))
	{
		events.POST("", c.EventHandler.Create)
		events.GET("", c.EventHandler.ListMine)
		events.GET("/:id", c.EventHandler.GetMine)
		events.GET("/:id/gallery", c.EventHandler.GroupedGallery)
		events.GET("/:id/share-links", c.ShareHandler.ListByEvent)
	}
}

// ========================================
// IMAGE ROUTES (CUSTOMER)
// ========================================
func setupCustomerImageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	images := v1.Group("/images")
	images.Use(middleware.Authenticate(c.IdentityResolver, identitymodel.ChannelCustomer))
	{
		images.DELETE("/:id", c.ImageHandler.DeleteAsCustomer)
	}
}

// ========================================
// SHARE LINK ROUTES (CUSTOMER)
// ========================================
func setupShareLinkRoutes(v1 *gin.RouterGroup, c *container.Container) {
	shareLinks := v1.Group("/share-links")
	shareLinks.Use(middleware.Authenticate(c.IdentityResolver, identitymodel.ChannelCustomer))
	{
		shareLinks.POST("", c.ShareHandler.Create)
		shareLinks.DELETE("/:code", c.ShareHandler.Revoke)
	}
}

// ========================================
// GUEST ROUTES
// ========================================
func setupGuestRoutes(v1 *gin.RouterGroup, c *container.Container) {
	guest := v1.Group("/guest")
	guest.Use(middleware.Authenticate(c.IdentityResolver, identitymodel.ChannelGuest))
	{
		guest.GET("/dashboard", c.GuestHandler.Dashboard)
		guest.POST("/images", c.ImageHandler.RecordUpload)
		guest.GET("/images", c.ImageHandler.ListMyUploads)
		guest.DELETE("/images/:id", c.ImageHandler.DeleteAsGuest)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
