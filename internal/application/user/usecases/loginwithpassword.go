package usecases

import (
	"context"
	"errors"
	"time"

	"campusdesk/internal/application/user/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/config"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email      string
	Password   string
	RememberMe bool
	IPAddress  string
	UserAgent  string
}

type LoginResult struct {
	User         *user.User
	SessionID    string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	authHelper     *helpers.AuthHelper
	sessionConfig  config.SessionConfig
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	authHelper *helpers.AuthHelper,
	sessionConfig config.SessionConfig,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		authHelper:     authHelper,
		sessionConfig:  sessionConfig,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Same message as a bad password so the response does not
			// reveal whether the email is registered.
			return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, apperrors.NewInternalError("failed to look up user")
	}

	if err := uc.authHelper.ValidateUserCanLogin(existingUser); err != nil {
		return nil, err
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.authHelper.RecordFailedLoginAndSave(ctx, existingUser)
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	sessionDuration := time.Duration(uc.sessionConfig.DefaultExpDays) * 24 * time.Hour
	if cmd.RememberMe {
		sessionDuration = time.Duration(uc.sessionConfig.RememberExpDays) * 24 * time.Hour
	}

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
	uc.authHelper.RecordActivity(ctx, existingUser.ID(), activity.ActionLogin, "logged in with password", client)

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "session_id", sessionWithTokens.Session.ID)

	return &LoginResult{
		User:         existingUser,
		SessionID:    sessionWithTokens.Session.ID,
		AccessToken:  sessionWithTokens.AccessToken,
		RefreshToken: sessionWithTokens.RefreshToken,
		ExpiresIn:    sessionWithTokens.ExpiresIn,
	}, nil
}
