package models

import (
	"time"

	"campusdesk/internal/shared/constants"
)

type ActivityLogModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	Action      string    `gorm:"size:50;not null;index"`
	Description string    `gorm:"size:500"`
	IPAddress   string    `gorm:"size:45"`
	UserAgent   string    `gorm:"size:512"`
	CreatedAt   time.Time `gorm:"index"`
}

func (ActivityLogModel) TableName() string {
	return constants.TableActivityLogs
}
