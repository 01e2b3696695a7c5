package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
)

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(gormDB *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: gormDB}
}

func (r *ActivityLogRepository) Create(ctx context.Context, l *activity.Log) error {
	model := r.toModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *ActivityLogRepository) ListRecent(ctx context.Context, limit int) ([]*activity.Log, error) {
	var logModels []models.ActivityLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC").Limit(limit).Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}

	return r.toDomainSlice(logModels)
}

func (r *ActivityLogRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*activity.Log, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ActivityLogModel{}).Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	var logModels []models.ActivityLogModel
	offset := (page - 1) * pageSize
	if err := tx.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}

	logs, err := r.toDomainSlice(logModels)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *ActivityLogRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.ActivityLogModel{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete user activity logs: %w", err)
	}
	return nil
}

func (r *ActivityLogRepository) toModel(l *activity.Log) *models.ActivityLogModel {
	return &models.ActivityLogModel{
		ID:          l.ID(),
		UserID:      l.UserID(),
		Action:      l.Action(),
		Description: l.Description(),
		IPAddress:   l.IPAddress(),
		UserAgent:   l.UserAgent(),
		CreatedAt:   l.CreatedAt(),
	}
}

func (r *ActivityLogRepository) toDomainSlice(logModels []models.ActivityLogModel) ([]*activity.Log, error) {
	logs := make([]*activity.Log, 0, len(logModels))
	for i := range logModels {
		m := &logModels[i]
		l, err := activity.ReconstructLog(m.ID, m.UserID, m.Action, m.Description, m.IPAddress, m.UserAgent, m.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}
