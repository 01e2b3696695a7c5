package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/notification"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(gormDB *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: gormDB}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.toModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) GetByID(ctx context.Context, notificationID uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notification.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.toDomain(&model)
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notificationModels []models.NotificationModel
	offset := (page - 1) * pageSize
	if err := tx.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&notificationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		n, err := r.toDomain(&notificationModels[i])
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}

	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.NotificationModel{}).
		Where("id = ?", notificationID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotFound
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (r *NotificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.NotificationModel{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete user notifications: %w", err)
	}
	return nil
}

func (r *NotificationRepository) toModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      string(n.Type()),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func (r *NotificationRepository) toDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Title,
		model.Message,
		notification.Type(model.Type),
		model.IsRead,
		model.CreatedAt,
	)
}
