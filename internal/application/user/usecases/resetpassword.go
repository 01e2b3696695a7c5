package usecases

import (
	"context"
	"errors"
	"fmt"

	"campusdesk/internal/application/user/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
	IPAddress   string
	UserAgent   string
}

type ResetPasswordUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher user.PasswordHasher
	authHelper     *helpers.AuthHelper
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	authHelper *helpers.AuthHelper,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		authHelper:     authHelper,
		logger:         logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	token, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return apperrors.NewValidationError(user.ErrInvalidToken.Error())
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("invalid password: %v", err))
	}

	existingUser, err := uc.userRepo.GetByResetTokenHash(ctx, token.Hash())
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return apperrors.NewValidationError(user.ErrInvalidToken.Error())
		}
		uc.logger.Errorw("failed to look up reset token", "error", err)
		return apperrors.NewInternalError("failed to look up token")
	}

	if err := existingUser.ResetPassword(cmd.Token, newPassword, uc.passwordHasher); err != nil {
		return apperrors.NewValidationError(user.ErrInvalidToken.Error())
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to save new password", "error", err, "user_id", existingUser.ID())
		return apperrors.NewInternalError("failed to save new password")
	}

	// Existing sessions are revoked so a stolen session does not survive
	// the reset.
	if err := uc.sessionRepo.DeleteByUserID(existingUser.ID()); err != nil {
		uc.logger.Warnw("failed to revoke sessions after reset", "error", err, "user_id", existingUser.ID())
	}

	uc.authHelper.RecordActivity(ctx, existingUser.ID(), activity.ActionPasswordReset, "password reset", helpers.ClientInfo{
		IPAddress: cmd.IPAddress,
		UserAgent: cmd.UserAgent,
	})

	uc.logger.Infow("password reset completed", "user_id", existingUser.ID())
	return nil
}
