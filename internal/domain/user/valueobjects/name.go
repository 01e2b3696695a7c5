package valueobjects

import (
	"fmt"
	"strings"
)

// Name holds a user's first and last name.
type Name struct {
	first string
	last  string
}

func NewName(first, last string) (*Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)

	if first == "" {
		return nil, fmt.Errorf("first name cannot be empty")
	}
	if last == "" {
		return nil, fmt.Errorf("last name cannot be empty")
	}
	if len(first) > 50 {
		return nil, fmt.Errorf("first name cannot exceed 50 characters")
	}
	if len(last) > 50 {
		return nil, fmt.Errorf("last name cannot exceed 50 characters")
	}

	return &Name{first: first, last: last}, nil
}

func (n *Name) First() string {
	return n.first
}

func (n *Name) Last() string {
	return n.last
}

// DisplayName returns "First Last", the form shown in session info and emails.
func (n *Name) DisplayName() string {
	return n.first + " " + n.last
}

func (n *Name) Initials() string {
	return strings.ToUpper(n.first[:1] + n.last[:1])
}

func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.first == other.first && n.last == other.last
}

func (n *Name) String() string {
	return n.DisplayName()
}
