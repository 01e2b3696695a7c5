package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Gin context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserName  = "user_name"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
)

// Table names
const (
	TableUsers          = "users"
	TableSessions       = "sessions"
	TableTickets        = "support_tickets"
	TableTicketComments = "ticket_comments"
	TableNotifications  = "notifications"
	TableActivityLogs   = "activity_logs"
	TableSystemSettings = "system_settings"
)
