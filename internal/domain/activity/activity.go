package activity

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Well-known action names written to the audit trail.
const (
	ActionRegister       = "register"
	ActionLogin          = "login"
	ActionLogout         = "logout"
	ActionVerifyEmail    = "verify_email"
	ActionPasswordReset  = "password_reset"
	ActionTicketCreate   = "ticket_create"
	ActionTicketAssign   = "ticket_assign"
	ActionTicketStatus   = "ticket_status"
	ActionTicketDelete   = "ticket_delete"
	ActionUserDelete     = "user_delete"
	ActionSettingsUpdate = "settings_update"
)

// Log is an append-only audit record. Entries are never updated or
// removed individually.
type Log struct {
	id          uint
	userID      uint
	action      string
	description string
	ipAddress   string
	userAgent   string
	createdAt   time.Time
}

func NewLog(userID uint, action, description, ipAddress, userAgent string) (*Log, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	action = strings.TrimSpace(action)
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}

	return &Log{
		userID:      userID,
		action:      action,
		description: strings.TrimSpace(description),
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructLog(id, userID uint, action, description, ipAddress, userAgent string, createdAt time.Time) (*Log, error) {
	if id == 0 {
		return nil, fmt.Errorf("log ID cannot be zero")
	}
	return &Log{
		id:          id,
		userID:      userID,
		action:      action,
		description: description,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		createdAt:   createdAt,
	}, nil
}

func (l *Log) ID() uint             { return l.id }
func (l *Log) UserID() uint         { return l.userID }
func (l *Log) Action() string       { return l.action }
func (l *Log) Description() string  { return l.description }
func (l *Log) IPAddress() string    { return l.ipAddress }
func (l *Log) UserAgent() string    { return l.userAgent }
func (l *Log) CreatedAt() time.Time { return l.createdAt }

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("log ID cannot be zero")
	}
	l.id = id
	return nil
}

type Repository interface {
	Create(ctx context.Context, log *Log) error
	ListRecent(ctx context.Context, limit int) ([]*Log, error)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Log, int64, error)
	DeleteByUserID(ctx context.Context, userID uint) error
}
