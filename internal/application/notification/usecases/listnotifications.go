package usecases

import (
	"context"

	"campusdesk/internal/domain/notification"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListNotificationsCommand struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListNotificationsResult struct {
	Notifications []*notification.Notification
	Total         int64
	Unread        int64
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error) {
	page := cmd.Page
	if page < 1 {
		page = 1
	}
	pageSize := cmd.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	notifications, total, err := uc.notificationRepo.ListByUserID(ctx, cmd.UserID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to list notifications")
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to count notifications")
	}

	return &ListNotificationsResult{
		Notifications: notifications,
		Total:         total,
		Unread:        unread,
	}, nil
}
