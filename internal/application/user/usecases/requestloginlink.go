package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/config"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RequestLoginLinkCommand struct {
	Email     string
	FirstName string
	LastName  string
}

type RequestLoginLinkUseCase struct {
	userRepo     user.Repository
	emailService EmailService
	tokenConfig  config.TokenConfig
	logger       logger.Interface
}

func NewRequestLoginLinkUseCase(
	userRepo user.Repository,
	emailService EmailService,
	tokenConfig config.TokenConfig,
	logger logger.Interface,
) *RequestLoginLinkUseCase {
	return &RequestLoginLinkUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		tokenConfig:  tokenConfig,
		logger:       logger,
	}
}

// Execute issues a single-use login link. The caller must supply the name
// on file together with the email; responses do not reveal whether the
// account exists.
func (uc *RequestLoginLinkUseCase) Execute(ctx context.Context, cmd RequestLoginLinkCommand) error {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			uc.logger.Infow("login link requested for unknown email", "email", cmd.Email)
			return nil
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return apperrors.NewInternalError("failed to look up user")
	}

	if !strings.EqualFold(existingUser.Name().First(), strings.TrimSpace(cmd.FirstName)) ||
		!strings.EqualFold(existingUser.Name().Last(), strings.TrimSpace(cmd.LastName)) {
		uc.logger.Infow("login link request with mismatched name", "user_id", existingUser.ID())
		return nil
	}

	if !existingUser.IsEmailVerified() {
		uc.logger.Infow("login link requested for unverified account", "user_id", existingUser.ID())
		return nil
	}

	linkTTL := time.Duration(uc.tokenConfig.LoginLinkExpiresMinutes) * time.Minute
	token, err := existingUser.GenerateLoginLinkToken(linkTTL)
	if err != nil {
		uc.logger.Errorw("failed to generate login link token", "error", err)
		return apperrors.NewInternalError("failed to generate login link")
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to save login link token", "error", err)
		return apperrors.NewInternalError("failed to save login link")
	}

	if err := uc.emailService.SendLoginLinkEmail(existingUser.Email().String(), token.Value()); err != nil {
		uc.logger.Warnw("failed to send login link email", "error", err, "user_id", existingUser.ID())
	}

	uc.logger.Infow("login link issued", "user_id", existingUser.ID())
	return nil
}
