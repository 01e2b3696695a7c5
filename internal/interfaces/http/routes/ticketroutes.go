package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket routes. Specific paths are
// registered before parameterized ones to avoid route conflicts.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.Create)
		tickets.GET("", cfg.TicketHandler.List)
		tickets.GET("/stats", cfg.TicketHandler.Stats)

		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
		tickets.POST("/:id/assign", authorization.RequireAdmin(), cfg.TicketHandler.Assign)
		tickets.PATCH("/:id/status", cfg.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/priority", cfg.TicketHandler.ChangePriority)

		tickets.GET("/:id", cfg.TicketHandler.Get)
		tickets.PUT("/:id", cfg.TicketHandler.Update)
		tickets.DELETE("/:id", authorization.RequireAdmin(), cfg.TicketHandler.Delete)
	}
}
