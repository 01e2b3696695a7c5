package usecases

import (
	"context"
	"errors"

	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ChangePriorityCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
	Priority  string
}

type ChangePriorityUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangePriorityUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*ticket.Ticket, error) {
	if !cmd.ActorRole.CanBeAssignee() {
		return nil, apperrors.NewForbiddenError(ticket.ErrAccessDenied.Error())
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, apperrors.NewInternalError("failed to get ticket")
	}

	if err := t.ChangePriority(priority); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", t.ID())
		return nil, apperrors.NewInternalError("failed to save ticket")
	}

	uc.logger.Infow("ticket priority changed",
		"ticket_id", t.ID(),
		"priority", priority.String(),
		"actor_id", cmd.ActorID,
	)
	return t, nil
}
