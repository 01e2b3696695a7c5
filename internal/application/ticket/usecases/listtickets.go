package usecases

import (
	"context"

	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListTicketsCommand struct {
	ActorID   uint
	ActorRole authorization.UserRole

	Status     string
	Priority   string
	Category   string
	Search     string
	AssigneeID uint
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets []*ticket.Ticket
	Total   int64
	Page    int
	Pages   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute lists tickets the actor may see. Queue roles browse the whole
// queue; everyone else only sees their own tickets.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		Status:    cmd.Status,
		Priority:  cmd.Priority,
		Category:  cmd.Category,
		Search:    cmd.Search,
		SortBy:    cmd.SortBy,
		SortOrder: cmd.SortOrder,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
	}

	if cmd.ActorRole.CanBeAssignee() {
		filter.AssigneeID = cmd.AssigneeID
	} else {
		filter.UserID = cmd.ActorID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "actor_id", cmd.ActorID)
		return nil, apperrors.NewInternalError("failed to list tickets")
	}

	pages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return &ListTicketsResult{
		Tickets: tickets,
		Total:   total,
		Page:    filter.Page,
		Pages:   pages,
	}, nil
}
