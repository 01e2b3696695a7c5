package usecases

import (
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/authorization"
)

// EmailService is the outbound mail port used by the auth flows.
type EmailService interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendLoginLinkEmail(to, token string) error
}

// JWTService issues and validates the signed token pair bound to a session.
type JWTService interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (*auth.TokenPair, error)
	VerifyRefresh(tokenString string) (*auth.Claims, error)
}
