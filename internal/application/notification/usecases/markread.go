package usecases

import (
	"context"
	"errors"

	"campusdesk/internal/domain/notification"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type MarkReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return apperrors.NewNotFoundError("notification not found")
		}
		uc.logger.Errorw("failed to get notification", "error", err, "notification_id", cmd.NotificationID)
		return apperrors.NewInternalError("failed to get notification")
	}

	if !n.IsOwnedBy(cmd.UserID) {
		return apperrors.NewForbiddenError("notification belongs to another user")
	}

	if err := uc.notificationRepo.MarkRead(ctx, n.ID()); err != nil {
		uc.logger.Errorw("failed to mark notification read", "error", err, "notification_id", n.ID())
		return apperrors.NewInternalError("failed to mark notification read")
	}
	return nil
}
