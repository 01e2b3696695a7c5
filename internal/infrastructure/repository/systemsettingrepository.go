package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusdesk/internal/domain/setting"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
)

type SystemSettingRepository struct {
	db *gorm.DB
}

func NewSystemSettingRepository(gormDB *gorm.DB) *SystemSettingRepository {
	return &SystemSettingRepository{db: gormDB}
}

// Upsert inserts the setting or updates its value when the key exists.
func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.Setting) error {
	model := &models.SystemSettingModel{
		SettingKey: s.Key(),
		Value:      s.Value(),
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}

func (r *SystemSettingRepository) GetByKey(ctx context.Context, key string) (*setting.Setting, error) {
	var model models.SystemSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("setting_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}

	return setting.ReconstructSetting(model.SettingKey, model.Value, model.UpdatedAt), nil
}

func (r *SystemSettingRepository) List(ctx context.Context) ([]*setting.Setting, error) {
	var settingModels []models.SystemSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("setting_key ASC").Find(&settingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	settings := make([]*setting.Setting, 0, len(settingModels))
	for i := range settingModels {
		m := &settingModels[i]
		settings = append(settings, setting.ReconstructSetting(m.SettingKey, m.Value, m.UpdatedAt))
	}

	return settings, nil
}
