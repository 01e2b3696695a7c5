package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupNotificationRoutes configures in-app notification routes.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", cfg.NotificationHandler.List)
		notifications.POST("/read-all", cfg.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", cfg.NotificationHandler.MarkRead)
	}
}
