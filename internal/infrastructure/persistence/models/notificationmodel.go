package models

import (
	"time"

	"campusdesk/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"size:200;not null"`
	Message   string `gorm:"type:text"`
	Type      string `gorm:"size:20;not null;default:info"`
	IsRead    bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
