package usecases

import (
	"context"
	"errors"
	"time"

	"campusdesk/internal/application/user/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/config"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type VerifyLoginLinkCommand struct {
	Token     string
	IPAddress string
	UserAgent string
}

type VerifyLoginLinkUseCase struct {
	userRepo      user.Repository
	jwtService    JWTService
	authHelper    *helpers.AuthHelper
	sessionConfig config.SessionConfig
	logger        logger.Interface
}

func NewVerifyLoginLinkUseCase(
	userRepo user.Repository,
	jwtService JWTService,
	authHelper *helpers.AuthHelper,
	sessionConfig config.SessionConfig,
	logger logger.Interface,
) *VerifyLoginLinkUseCase {
	return &VerifyLoginLinkUseCase{
		userRepo:      userRepo,
		jwtService:    jwtService,
		authHelper:    authHelper,
		sessionConfig: sessionConfig,
		logger:        logger,
	}
}

// Execute consumes the magic-link token and opens a session. The session
// is created here, when the link is visited, not when it was requested.
func (uc *VerifyLoginLinkUseCase) Execute(ctx context.Context, cmd VerifyLoginLinkCommand) (*LoginResult, error) {
	token, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidToken.Error())
	}

	existingUser, err := uc.userRepo.GetByLoginLinkTokenHash(ctx, token.Hash())
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(user.ErrInvalidToken.Error())
		}
		uc.logger.Errorw("failed to look up login link token", "error", err)
		return nil, apperrors.NewInternalError("failed to look up token")
	}

	if err := uc.authHelper.ValidateUserCanLogin(existingUser); err != nil {
		return nil, err
	}

	if err := existingUser.ConsumeLoginLinkToken(cmd.Token); err != nil {
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidToken.Error())
	}

	sessionDuration := time.Duration(uc.sessionConfig.DefaultExpDays) * 24 * time.Hour
	client := helpers.ClientInfo{IPAddress: cmd.IPAddress, UserAgent: cmd.UserAgent}

	sessionWithTokens, err := uc.authHelper.CreateSessionWithTokens(existingUser, client, sessionDuration,
		func(userID uint, sessionID string) (*auth.TokenPair, error) {
			return uc.jwtService.Generate(userID, sessionID, existingUser.Role())
		},
	)
	if err != nil {
		return nil, err
	}

	uc.authHelper.SaveUserAfterLogin(ctx, existingUser)
	uc.authHelper.RecordActivity(ctx, existingUser.ID(), activity.ActionLogin, "logged in with login link", client)

	uc.logger.Infow("user logged in via login link", "user_id", existingUser.ID())

	return &LoginResult{
		User:         existingUser,
		SessionID:    sessionWithTokens.Session.ID,
		AccessToken:  sessionWithTokens.AccessToken,
		RefreshToken: sessionWithTokens.RefreshToken,
		ExpiresIn:    sessionWithTokens.ExpiresIn,
	}, nil
}
