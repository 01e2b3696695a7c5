package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session is the server-side login record. Expiry is checked lazily by the
// auth gate on each request; there is no background sweeper.
type Session struct {
	ID             string
	UserID         uint
	IPAddress      string
	UserAgent      string
	ExpiresAt      time.Time
	LastActivityAt time.Time
	CreatedAt      time.Time
}

func NewSession(userID uint, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now()
	return &Session{
		ID:             id,
		UserID:         userID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		ExpiresAt:      expiresAt,
		LastActivityAt: now,
		CreatedAt:      now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsIdleExpired reports whether the session has been inactive longer than
// the configured timeout. Measured from last activity, so active users
// stay logged in.
func (s *Session) IsIdleExpired(idleTimeout time.Duration) bool {
	if idleTimeout <= 0 {
		return false
	}
	return time.Since(s.LastActivityAt) > idleTimeout
}

func (s *Session) UpdateActivity() {
	s.LastActivityAt = time.Now()
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type SessionRepository interface {
	Create(session *Session) error
	GetByID(sessionID string) (*Session, error)
	GetByUserID(userID uint) ([]*Session, error)
	Update(session *Session) error
	Delete(sessionID string) error
	DeleteByUserID(userID uint) error
	DeleteExpired() error
}
