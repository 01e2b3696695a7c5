package ticket

import "errors"

var (
	ErrNotFound        = errors.New("ticket not found")
	ErrAccessDenied    = errors.New("you do not have access to this ticket")
	ErrInvalidAssignee = errors.New("assignee must be a staff or admin user")
)
