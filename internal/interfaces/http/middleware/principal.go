package middleware

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/constants"
)

// Principal is the authenticated caller extracted from the request
// context. Handlers read it instead of poking at raw context keys.
type Principal struct {
	UserID    uint
	SessionID string
	Role      authorization.UserRole
}

// GetPrincipal returns the caller set by RequireAuth. The bool is false
// on unauthenticated requests.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return Principal{}, false
	}
	userID, ok := rawID.(uint)
	if !ok || userID == 0 {
		return Principal{}, false
	}

	return Principal{
		UserID:    userID,
		SessionID: c.GetString(constants.ContextKeySessionID),
		Role:      authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}
