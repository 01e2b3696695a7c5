package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/interfaces/http/routes"
)

// SetupRoutes installs the middleware chain and all route groups.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRateLimit := middleware.RateLimit(c.rateLimiter, c.cfg.RateLimit, "auth", c.log)

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimit:      authRateLimit,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.notificationHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		AdminHandler:   c.adminHandler,
		SettingHandler: c.settingHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

// Engine returns the configured Gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
