package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService    *auth.JWTService
	sessionRepo   user.SessionRepository
	sessionConfig config.SessionConfig
	cookieConfig  config.CookieConfig
	logger        logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	sessionRepo user.SessionRepository,
	sessionConfig config.SessionConfig,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:    jwtService,
		sessionRepo:   sessionRepo,
		sessionConfig: sessionConfig,
		cookieConfig:  cookieConfig,
		logger:        logger,
	}
}

// RequireAuth verifies the access token and the server-side session behind
// it. Sessions expire on their deadline or after the configured idle
// window, whichever comes first; expired sessions are removed on sight.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.VerifyAccess(token)
		if err != nil {
			m.logger.Warnw("failed to verify access token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		session, err := m.sessionRepo.GetByID(claims.SessionID)
		if err != nil || session == nil {
			utils.ClearAuthCookies(c, m.cookieConfig)
			utils.ErrorResponse(c, http.StatusUnauthorized, "session not found")
			c.Abort()
			return
		}

		idleTimeout := time.Duration(m.sessionConfig.IdleTimeoutMinutes) * time.Minute
		if session.IsExpired() || session.IsIdleExpired(idleTimeout) {
			if err := m.sessionRepo.Delete(session.ID); err != nil {
				m.logger.Warnw("failed to delete expired session", "error", err, "session_id", session.ID)
			}
			utils.ClearAuthCookies(c, m.cookieConfig)
			utils.ErrorResponse(c, http.StatusUnauthorized, "session expired")
			c.Abort()
			return
		}

		session.UpdateActivity()
		if err := m.sessionRepo.Update(session); err != nil {
			m.logger.Warnw("failed to update session activity", "error", err, "session_id", session.ID)
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
