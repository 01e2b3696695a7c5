package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/utils"
)

// RequireAdmin gates the back-office routes. It runs after the auth
// middleware, which puts the principal's role into the context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessOwnedResource reports whether the actor may act on a resource
// owned by ownerID. Admins may act on anything.
func CanAccessOwnedResource(actorID uint, actorRole UserRole, ownerID uint) bool {
	if actorRole.IsAdmin() {
		return true
	}
	return actorID == ownerID
}
