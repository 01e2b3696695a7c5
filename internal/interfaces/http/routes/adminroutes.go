package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	SettingHandler *handlers.SettingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin back-office routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/dashboard", cfg.AdminHandler.Dashboard)
		admin.GET("/reports", cfg.AdminHandler.Reports)

		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.DELETE("/users/:id", cfg.AdminHandler.DeleteUser)
		admin.PATCH("/users/:id/verified", cfg.AdminHandler.SetUserVerified)
		admin.POST("/users/:id/reset-password", cfg.AdminHandler.ResetUserPassword)

		admin.GET("/settings", cfg.SettingHandler.Get)
		admin.PUT("/settings", cfg.SettingHandler.Update)
	}
}
