package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "campusdesk/internal/domain/ticket/valueobjects"
)

const (
	maxSubjectLength     = 200
	maxDescriptionLength = 10000
	maxResolutionLength  = 5000
)

// Ticket is the support request aggregate root.
type Ticket struct {
	id          uint
	number      string
	userID      uint
	subject     string
	description string
	category    vo.Category
	priority    vo.Priority
	status      vo.Status

	assigneeID *uint
	resolution *string

	version    int
	createdAt  time.Time
	updatedAt  time.Time
	resolvedAt *time.Time
	closedAt   *time.Time
}

// NewTicket creates an open ticket. The ticket number is assigned by the
// creating use case before persistence.
func NewTicket(number string, userID uint, subject, description string, category vo.Category, priority vo.Priority) (*Ticket, error) {
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &Ticket{
		number:      number,
		userID:      userID,
		subject:     strings.TrimSpace(subject),
		description: strings.TrimSpace(description),
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	number string,
	userID uint,
	subject, description string,
	category vo.Category,
	priority vo.Priority,
	status vo.Status,
	assigneeID *uint,
	resolution *string,
	version int,
	createdAt, updatedAt time.Time,
	resolvedAt, closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:          id,
		number:      number,
		userID:      userID,
		subject:     subject,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		assigneeID:  assigneeID,
		resolution:  resolution,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint               { return t.id }
func (t *Ticket) Number() string         { return t.number }
func (t *Ticket) UserID() uint           { return t.userID }
func (t *Ticket) Subject() string        { return t.subject }
func (t *Ticket) Description() string    { return t.description }
func (t *Ticket) Category() vo.Category  { return t.category }
func (t *Ticket) Priority() vo.Priority  { return t.priority }
func (t *Ticket) Status() vo.Status      { return t.status }
func (t *Ticket) AssigneeID() *uint      { return t.assigneeID }
func (t *Ticket) Resolution() *string    { return t.resolution }
func (t *Ticket) Version() int           { return t.version }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time   { return t.closedAt }

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.userID == userID
}

func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == userID
}

// UpdateDetails changes subject and description. Only open tickets may be
// edited by their owner; later states belong to the support workflow.
func (t *Ticket) UpdateDetails(subject, description string) error {
	if t.status != vo.StatusOpen {
		return fmt.Errorf("only open tickets can be edited")
	}
	if err := validateSubject(subject); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}

	t.subject = strings.TrimSpace(subject)
	t.description = strings.TrimSpace(description)
	t.touch()
	return nil
}

// Assign sets the assignee. Role checks happen in the use case where the
// assignee user is loaded.
func (t *Ticket) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID is required")
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot assign a closed ticket")
	}

	t.assigneeID = &assigneeID
	if t.status == vo.StatusOpen {
		t.status = vo.StatusInProgress
	}
	t.touch()
	return nil
}

func (t *Ticket) Unassign() error {
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot unassign a closed ticket")
	}
	t.assigneeID = nil
	t.touch()
	return nil
}

// ChangeStatus moves the ticket through its lifecycle. Resolving requires
// resolution text and stamps resolvedAt; reopening clears both.
func (t *Ticket) ChangeStatus(target vo.Status, resolution string) error {
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, target)
	}

	switch target {
	case vo.StatusResolved:
		resolution = strings.TrimSpace(resolution)
		if resolution == "" {
			return fmt.Errorf("resolution text is required to resolve a ticket")
		}
		if len(resolution) > maxResolutionLength {
			return fmt.Errorf("resolution cannot exceed %d characters", maxResolutionLength)
		}
		now := time.Now()
		t.resolution = &resolution
		t.resolvedAt = &now
	case vo.StatusClosed:
		now := time.Now()
		t.closedAt = &now
	case vo.StatusOpen:
		// Reopen: resolution history does not survive.
		t.resolution = nil
		t.resolvedAt = nil
		t.closedAt = nil
	case vo.StatusInProgress:
		t.resolution = nil
		t.resolvedAt = nil
	}

	t.status = target
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot reprioritize a closed ticket")
	}
	if t.priority == priority {
		return nil
	}

	t.priority = priority
	t.touch()
	return nil
}

// RecordComment bumps the ticket timestamp when a comment lands.
func (t *Ticket) RecordComment() {
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}

func validateSubject(subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return fmt.Errorf("subject cannot exceed %d characters", maxSubjectLength)
	}
	return nil
}

func validateDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description cannot exceed %d characters", maxDescriptionLength)
	}
	return nil
}
