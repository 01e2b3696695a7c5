package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNotFound = errors.New("notification not found")

// Type labels a notification for display styling.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeTicket  Type = "ticket"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeTicket:
		return true
	}
	return false
}

// Notification is an in-app alert. Append-only apart from the read flag.
type Notification struct {
	id        uint
	userID    uint
	title     string
	message   string
	notifType Type
	isRead    bool
	createdAt time.Time
}

func NewNotification(userID uint, title, message string, notifType Type) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}

	return &Notification{
		userID:    userID,
		title:     title,
		message:   strings.TrimSpace(message),
		notifType: notifType,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNotification(id, userID uint, title, message string, notifType Type, isRead bool, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	return &Notification{
		id:        id,
		userID:    userID,
		title:     title,
		message:   message,
		notifType: notifType,
		isRead:    isRead,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Type() Type           { return n.notifType }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) IsOwnedBy(userID uint) bool {
	return n.userID == userID
}

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, notificationID uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, notificationID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}
