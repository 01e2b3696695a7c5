package routes

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes. Credential-bearing
// endpoints sit behind the rate limiter.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimit, cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimit, cfg.AuthHandler.Login)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.GET("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/forgot-password", cfg.RateLimit, cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", cfg.AuthHandler.ResetPassword)

		auth.POST("/login-link", cfg.RateLimit, cfg.AuthHandler.RequestLoginLink)
		auth.GET("/login-link/verify", cfg.AuthHandler.VerifyLoginLink)

		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
