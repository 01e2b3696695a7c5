package usecases

import (
	"context"

	"campusdesk/internal/domain/notification"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type MarkAllReadCommand struct {
	UserID uint
}

type MarkAllReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications read", "error", err, "user_id", cmd.UserID)
		return apperrors.NewInternalError("failed to mark notifications read")
	}
	return nil
}
