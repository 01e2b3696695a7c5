package models

import (
	"time"

	"campusdesk/internal/shared/constants"
)

type TicketModel struct {
	ID          uint    `gorm:"primaryKey"`
	Number      string  `gorm:"uniqueIndex;size:50;not null"`
	UserID      uint    `gorm:"not null;index"`
	Subject     string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text;not null"`
	Category    string  `gorm:"size:50;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	Status      string  `gorm:"size:20;not null;index"`
	AssigneeID  *uint   `gorm:"index"`
	Resolution  *string `gorm:"type:text"`
	Version     int     `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	ClosedAt    *time.Time

	// No foreign key constraints or associations.
	// Relationships are managed by application logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}
