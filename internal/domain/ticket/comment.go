package ticket

import (
	"fmt"
	"strings"
	"time"
)

const maxCommentLength = 5000

// Comment is an append-only note on a ticket. Comments are never edited
// or deleted.
type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	body      string
	createdAt time.Time
}

func NewComment(ticketID, userID uint, body string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("comment body is required")
	}
	if len(body) > maxCommentLength {
		return nil, fmt.Errorf("comment cannot exceed %d characters", maxCommentLength)
	}

	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, body string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
