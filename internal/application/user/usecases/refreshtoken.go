package usecases

import (
	"context"
	"errors"

	"campusdesk/internal/domain/user"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshTokenUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	jwtService  JWTService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	jwtService JWTService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Execute rotates the token pair. The refresh token stays bound to its
// session; once the session is gone or expired the token is worthless.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	claims, err := uc.jwtService.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	session, err := uc.sessionRepo.GetByID(claims.SessionID)
	if err != nil || session == nil {
		return nil, apperrors.NewUnauthorizedError("session not found")
	}
	if session.IsExpired() {
		return nil, apperrors.NewUnauthorizedError("session expired")
	}

	existingUser, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("account no longer exists")
		}
		uc.logger.Errorw("failed to get user for refresh", "error", err, "user_id", claims.UserID)
		return nil, apperrors.NewInternalError("failed to refresh token")
	}

	pair, err := uc.jwtService.Generate(existingUser.ID(), session.ID, existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existingUser.ID())
		return nil, apperrors.NewInternalError("failed to refresh token")
	}

	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
