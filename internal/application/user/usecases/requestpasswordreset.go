package usecases

import (
	"context"
	"errors"
	"time"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/config"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

type RequestPasswordResetUseCase struct {
	userRepo     user.Repository
	emailService EmailService
	tokenConfig  config.TokenConfig
	logger       logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	emailService EmailService,
	tokenConfig config.TokenConfig,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		tokenConfig:  tokenConfig,
		logger:       logger,
	}
}

// Execute issues a reset token. Unknown emails succeed silently so the
// endpoint cannot be used to probe for accounts.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			uc.logger.Infow("password reset requested for unknown email", "email", cmd.Email)
			return nil
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return apperrors.NewInternalError("failed to look up user")
	}

	resetTTL := time.Duration(uc.tokenConfig.ResetExpiresMinutes) * time.Minute
	token, err := existingUser.GeneratePasswordResetToken(resetTTL)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err)
		return apperrors.NewInternalError("failed to generate reset token")
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to save reset token", "error", err)
		return apperrors.NewInternalError("failed to save reset token")
	}

	if err := uc.emailService.SendPasswordResetEmail(existingUser.Email().String(), token.Value()); err != nil {
		uc.logger.Warnw("failed to send reset email", "error", err, "user_id", existingUser.ID())
	}

	uc.logger.Infow("password reset requested", "user_id", existingUser.ID())
	return nil
}
