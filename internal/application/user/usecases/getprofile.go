package usecases

import (
	"context"
	"errors"

	"campusdesk/internal/domain/user"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(user.ErrNotFound.Error())
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, apperrors.NewInternalError("failed to load profile")
	}

	return existingUser, nil
}
