package ticket

import (
	"context"
	"time"
)

// Filter narrows ticket listings. A zero UserID means no owner filter.
type Filter struct {
	UserID     uint
	AssigneeID uint
	Status     string
	Priority   string
	Category   string
	Search     string
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// Stats aggregates ticket counts for dashboards.
type Stats struct {
	Total      int64
	Open       int64
	InProgress int64
	Resolved   int64
	Closed     int64
}

// ReportRow is a single group-by bucket in admin reports.
type ReportRow struct {
	Label string
	Count int64
}

// Report is the date-ranged summary behind the admin reports page.
type Report struct {
	TotalTickets     int64
	ResolvedTickets  int64
	AvgResolutionHrs float64
	ByStatus         []ReportRow
	ByPriority       []ReportRow
	ByCategory       []ReportRow
}

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*Ticket, error)
	CountByYear(ctx context.Context, year int) (int64, error)
	GetStats(ctx context.Context, userID uint) (*Stats, error)
	GetReport(ctx context.Context, from, to time.Time) (*Report, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
