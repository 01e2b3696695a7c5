package models

import (
	"time"

	"campusdesk/internal/shared/constants"
)

// UserModel is the persistence shape for accounts. It is the
// anti-corruption layer between the user aggregate and the database.
type UserModel struct {
	ID                         uint    `gorm:"primarykey"`
	Email                      string  `gorm:"uniqueIndex;not null;size:255"`
	FirstName                  string  `gorm:"not null;size:50"`
	LastName                   string  `gorm:"not null;size:50"`
	Role                       string  `gorm:"not null;default:student;size:20;index"`
	CampusID                   *string `gorm:"uniqueIndex;size:30"`
	PasswordHash               *string `gorm:"size:255"`
	EmailVerified              bool    `gorm:"default:false;index:idx_email_verified"`
	EmailVerificationToken     *string `gorm:"size:255;index:idx_email_verification_token"`
	EmailVerificationExpiresAt *time.Time
	PasswordResetToken         *string `gorm:"size:255;index:idx_password_reset_token"`
	PasswordResetExpiresAt     *time.Time
	LoginLinkToken             *string `gorm:"size:255;index:idx_login_link_token"`
	LoginLinkExpiresAt         *time.Time
	FailedLoginAttempts        int `gorm:"default:0"`
	LockedUntil                *time.Time
	LastLoginAt                *time.Time
	Version                    int `gorm:"not null;default:1"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
