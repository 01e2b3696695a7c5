package usecases

import (
	"context"
	"errors"

	"campusdesk/internal/domain/user"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type SetUserVerifiedCommand struct {
	UserID   uint
	Verified bool
}

type SetUserVerifiedUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetUserVerifiedUseCase(userRepo user.Repository, logger logger.Interface) *SetUserVerifiedUseCase {
	return &SetUserVerifiedUseCase{userRepo: userRepo, logger: logger}
}

// Execute flips the verification flag by admin decree, bypassing the
// email round trip.
func (uc *SetUserVerifiedUseCase) Execute(ctx context.Context, cmd SetUserVerifiedCommand) (*user.User, error) {
	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to get user")
	}

	if cmd.Verified {
		target.MarkVerified()
	} else {
		target.MarkUnverified()
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to save user", "error", err, "user_id", target.ID())
		return nil, apperrors.NewInternalError("failed to save user")
	}

	uc.logger.Infow("user verification changed", "user_id", target.ID(), "verified", cmd.Verified)
	return target, nil
}
