package usecases

import (
	"context"

	"campusdesk/internal/application/user/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
	UserID    uint
	IPAddress string
	UserAgent string
}

type SessionDeleter interface {
	Delete(sessionID string) error
}

type LogoutUseCase struct {
	sessionRepo SessionDeleter
	authHelper  *helpers.AuthHelper
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo SessionDeleter, authHelper *helpers.AuthHelper, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		authHelper:  authHelper,
		logger:      logger,
	}
}

// Execute destroys the session unconditionally. Logout never fails from
// the caller's perspective.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) {
	if cmd.SessionID != "" {
		if err := uc.sessionRepo.Delete(cmd.SessionID); err != nil {
			uc.logger.Warnw("failed to delete session on logout", "error", err, "session_id", cmd.SessionID)
		}
	}

	if cmd.UserID != 0 {
		uc.authHelper.RecordActivity(ctx, cmd.UserID, activity.ActionLogout, "logged out", helpers.ClientInfo{
			IPAddress: cmd.IPAddress,
			UserAgent: cmd.UserAgent,
		})
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserID, "session_id", cmd.SessionID)
}
