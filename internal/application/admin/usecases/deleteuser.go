package usecases

import (
	"context"
	"errors"
	"fmt"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID    uint
	ActorID   uint
	ActorRole authorization.UserRole
	IPAddress string
	UserAgent string
}

type DeleteUserUseCase struct {
	userRepo         user.Repository
	sessionRepo      user.SessionRepository
	notificationRepo notification.Repository
	activityRepo     activity.Repository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	notificationRepo notification.Repository,
	activityRepo activity.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:         userRepo,
		sessionRepo:      sessionRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute removes an account and its dependent rows. Admin accounts are
// never deletable, not even by other admins.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return apperrors.NewInternalError("failed to get user")
	}

	if !target.CanBeDeletedBy(cmd.ActorRole) {
		return apperrors.NewForbiddenError("this account cannot be deleted")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.notificationRepo.DeleteByUserID(txCtx, target.ID()); err != nil {
			return err
		}
		if err := uc.activityRepo.DeleteByUserID(txCtx, target.ID()); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, target.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", target.ID())
		return apperrors.NewInternalError("failed to delete user")
	}

	// Sessions live outside the transactional store boundary.
	if err := uc.sessionRepo.DeleteByUserID(target.ID()); err != nil {
		uc.logger.Warnw("failed to revoke sessions of deleted user", "error", err, "user_id", target.ID())
	}

	log, logErr := activity.NewLog(cmd.ActorID, activity.ActionUserDelete,
		fmt.Sprintf("deleted account %s", target.Email().String()), cmd.IPAddress, cmd.UserAgent)
	if logErr == nil {
		if err := uc.activityRepo.Create(ctx, log); err != nil {
			uc.logger.Warnw("failed to record user deletion", "error", err)
		}
	}

	uc.logger.Infow("user deleted", "user_id", target.ID(), "actor_id", cmd.ActorID)
	return nil
}
