package handlers

import (
	"time"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/setting"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
)

// Response shapes returned to the frontend. Entities never marshal
// directly; these mappers decide what leaves the API.

type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Initials    string     `json:"initials"`
	Role        string     `json:"role"`
	CampusID    *string    `json:"campus_id,omitempty"`
	Verified    bool       `json:"verified"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func userResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID(),
		Email:       u.Email().String(),
		Name:        u.Name().DisplayName(),
		Initials:    u.Name().Initials(),
		Role:        u.Role().String(),
		CampusID:    u.CampusID(),
		Verified:    u.IsEmailVerified(),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
}

func userResponses(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	return out
}

type TicketResponse struct {
	ID         uint       `json:"id"`
	Number     string     `json:"number"`
	UserID     uint       `json:"user_id"`
	Subject    string     `json:"subject"`
	Category   string     `json:"category"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	AssigneeID *uint      `json:"assignee_id,omitempty"`
	Version    int        `json:"version"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

func ticketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:         t.ID(),
		Number:     t.Number(),
		UserID:     t.UserID(),
		Subject:    t.Subject(),
		Category:   t.Category().String(),
		Priority:   t.Priority().String(),
		Status:     t.Status().String(),
		AssigneeID: t.AssigneeID(),
		Version:    t.Version(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
		ResolvedAt: t.ResolvedAt(),
		ClosedAt:   t.ClosedAt(),
	}
}

func ticketResponses(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketResponse(t))
	}
	return out
}

// TicketDetailResponse adds the body fields plus server-rendered HTML so
// the frontend never runs its own markdown pipeline.
type TicketDetailResponse struct {
	TicketResponse
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	Resolution      *string           `json:"resolution,omitempty"`
	ResolutionHTML  string            `json:"resolution_html,omitempty"`
	Comments        []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	UserID    uint      `json:"user_id"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func notificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      string(n.Type()),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func notificationResponses(notifications []*notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse(n))
	}
	return out
}

type ActivityResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	IPAddress   string    `json:"ip_address"`
	CreatedAt   time.Time `json:"created_at"`
}

func activityResponses(logs []*activity.Log) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ActivityResponse{
			ID:          l.ID(),
			UserID:      l.UserID(),
			Action:      l.Action(),
			Description: l.Description(),
			IPAddress:   l.IPAddress(),
			CreatedAt:   l.CreatedAt(),
		})
	}
	return out
}

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func settingResponses(settings []*setting.Setting) []SettingResponse {
	out := make([]SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, SettingResponse{
			Key:       s.Key(),
			Value:     s.Value(),
			UpdatedAt: s.UpdatedAt(),
		})
	}
	return out
}

type StatsResponse struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

func statsResponse(s *ticket.Stats) StatsResponse {
	return StatsResponse{
		Total:      s.Total,
		Open:       s.Open,
		InProgress: s.InProgress,
		Resolved:   s.Resolved,
		Closed:     s.Closed,
	}
}

type ReportRowResponse struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type ReportResponse struct {
	From             time.Time           `json:"from"`
	To               time.Time           `json:"to"`
	TotalTickets     int64               `json:"total_tickets"`
	ResolvedTickets  int64               `json:"resolved_tickets"`
	AvgResolutionHrs float64             `json:"avg_resolution_hours"`
	ByStatus         []ReportRowResponse `json:"by_status"`
	ByPriority       []ReportRowResponse `json:"by_priority"`
	ByCategory       []ReportRowResponse `json:"by_category"`
}

func reportRowResponses(rows []ticket.ReportRow) []ReportRowResponse {
	out := make([]ReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReportRowResponse{Label: r.Label, Count: r.Count})
	}
	return out
}
