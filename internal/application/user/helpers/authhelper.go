package helpers

import (
	"context"
	"time"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/auth"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

// ClientInfo carries request metadata into sessions and the audit trail.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// SessionWithTokens bundles a persisted session with its JWT pair.
type SessionWithTokens struct {
	Session      *user.Session
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// AuthHelper centralizes the login plumbing shared by the password and
// magic-link strategies.
type AuthHelper struct {
	userRepo     user.Repository
	sessionRepo  user.SessionRepository
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewAuthHelper(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	activityRepo activity.Repository,
	logger logger.Interface,
) *AuthHelper {
	return &AuthHelper{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ValidateUserCanLogin checks lockout and verification state before any
// credential is examined.
func (h *AuthHelper) ValidateUserCanLogin(u *user.User) error {
	if u.IsLocked() {
		return apperrors.NewUnauthorizedError(user.ErrAccountLocked.Error())
	}
	if !u.IsEmailVerified() {
		return apperrors.NewUnauthorizedError(user.ErrNotVerified.Error())
	}
	return nil
}

// CreateSessionWithTokens persists a session and signs the JWT pair for it.
func (h *AuthHelper) CreateSessionWithTokens(
	u *user.User,
	client ClientInfo,
	duration time.Duration,
	generate func(userID uint, sessionID string) (*auth.TokenPair, error),
) (*SessionWithTokens, error) {
	session, err := user.NewSession(u.ID(), client.IPAddress, client.UserAgent, time.Now().Add(duration))
	if err != nil {
		h.logger.Errorw("failed to create session", "error", err, "user_id", u.ID())
		return nil, apperrors.NewInternalError("failed to create session")
	}

	if err := h.sessionRepo.Create(session); err != nil {
		h.logger.Errorw("failed to persist session", "error", err, "user_id", u.ID())
		return nil, apperrors.NewInternalError("failed to persist session")
	}

	tokens, err := generate(u.ID(), session.ID)
	if err != nil {
		h.logger.Errorw("failed to generate tokens", "error", err, "user_id", u.ID())
		return nil, apperrors.NewInternalError("failed to generate tokens")
	}

	return &SessionWithTokens{
		Session:      session,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

// SaveUserAfterLogin persists last-login and cleared counters. Failures are
// logged but do not fail the login.
func (h *AuthHelper) SaveUserAfterLogin(ctx context.Context, u *user.User) {
	u.RecordLogin()
	if err := h.userRepo.Update(ctx, u); err != nil {
		h.logger.Warnw("failed to save user after login", "error", err, "user_id", u.ID())
	}
}

// RecordFailedLoginAndSave persists the bumped failure counter. Best effort.
func (h *AuthHelper) RecordFailedLoginAndSave(ctx context.Context, u *user.User) {
	if err := h.userRepo.Update(ctx, u); err != nil {
		h.logger.Warnw("failed to save failed login attempt", "error", err, "user_id", u.ID())
	}
}

// RecordActivity appends to the audit trail. Failures are logged only; the
// triggering operation already succeeded.
func (h *AuthHelper) RecordActivity(ctx context.Context, userID uint, action, description string, client ClientInfo) {
	log, err := activity.NewLog(userID, action, description, client.IPAddress, client.UserAgent)
	if err != nil {
		h.logger.Warnw("failed to build activity log", "error", err, "user_id", userID)
		return
	}
	if err := h.activityRepo.Create(ctx, log); err != nil {
		h.logger.Warnw("failed to record activity", "error", err, "user_id", userID, "action", action)
	}
}
