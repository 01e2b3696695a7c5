package models

import (
	"time"

	"campusdesk/internal/shared/constants"
)

// SessionModel is the persistence shape for server-side sessions.
type SessionModel struct {
	ID             string    `gorm:"primarykey;size:64"`
	UserID         uint      `gorm:"not null;index"`
	IPAddress      string    `gorm:"size:45"`
	UserAgent      string    `gorm:"size:512"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	LastActivityAt time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
