package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AdminResetPasswordCommand struct {
	UserID uint
}

type AdminResetPasswordResult struct {
	// TempPassword is shown to the admin exactly once and never stored
	// in plain form.
	TempPassword string
}

type AdminResetPasswordUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewAdminResetPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *AdminResetPasswordUseCase {
	return &AdminResetPasswordUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *AdminResetPasswordUseCase) Execute(ctx context.Context, cmd AdminResetPasswordCommand) (*AdminResetPasswordResult, error) {
	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to get user")
	}

	plain, err := generateTempPassword()
	if err != nil {
		uc.logger.Errorw("failed to generate temp password", "error", err)
		return nil, apperrors.NewInternalError("failed to generate password")
	}

	password, err := vo.NewPassword(plain)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate password")
	}

	if err := target.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err, "user_id", target.ID())
		return nil, apperrors.NewInternalError("failed to set password")
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to save user", "error", err, "user_id", target.ID())
		return nil, apperrors.NewInternalError("failed to save user")
	}

	if err := uc.sessionRepo.DeleteByUserID(target.ID()); err != nil {
		uc.logger.Warnw("failed to revoke sessions after admin reset", "error", err, "user_id", target.ID())
	}

	uc.logger.Infow("password reset by admin", "user_id", target.ID())
	return &AdminResetPasswordResult{TempPassword: plain}, nil
}

// generateTempPassword builds a random hex password. A "t7" prefix keeps
// the letter and digit rules satisfied whatever the random bytes are.
func generateTempPassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return "t7" + hex.EncodeToString(buf), nil
}
