package models

import (
	"time"

	"campusdesk/internal/shared/constants"
)

type SystemSettingModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	SettingKey string `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex"`
	Value      string `gorm:"column:value;type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SystemSettingModel) TableName() string {
	return constants.TableSystemSettings
}
