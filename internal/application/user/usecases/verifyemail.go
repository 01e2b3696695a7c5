package usecases

import (
	"context"
	"errors"

	"campusdesk/internal/application/user/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Token     string
	IPAddress string
	UserAgent string
}

type VerifyEmailUseCase struct {
	userRepo   user.Repository
	authHelper *helpers.AuthHelper
	logger     logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, authHelper *helpers.AuthHelper, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo:   userRepo,
		authHelper: authHelper,
		logger:     logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) error {
	token, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return apperrors.NewValidationError(user.ErrInvalidToken.Error())
	}

	existingUser, err := uc.userRepo.GetByVerificationTokenHash(ctx, token.Hash())
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return apperrors.NewValidationError(user.ErrInvalidToken.Error())
		}
		uc.logger.Errorw("failed to look up verification token", "error", err)
		return apperrors.NewInternalError("failed to look up token")
	}

	if err := existingUser.VerifyEmail(cmd.Token); err != nil {
		return apperrors.NewValidationError(user.ErrInvalidToken.Error())
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to save verified user", "error", err, "user_id", existingUser.ID())
		return apperrors.NewInternalError("failed to save verification")
	}

	uc.authHelper.RecordActivity(ctx, existingUser.ID(), activity.ActionVerifyEmail, "email verified", helpers.ClientInfo{
		IPAddress: cmd.IPAddress,
		UserAgent: cmd.UserAgent,
	})

	uc.logger.Infow("email verified", "user_id", existingUser.ID())
	return nil
}
