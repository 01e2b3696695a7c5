package usecases

import (
	"context"
	"errors"

	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	ActorID     uint
	ActorRole   authorization.UserRole
	Subject     string
	Description string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute edits subject and description. Only the owner may edit, and
// only while the ticket is still open.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, apperrors.NewInternalError("failed to get ticket")
	}

	if !authorization.CanAccessOwnedResource(cmd.ActorID, cmd.ActorRole, t.UserID()) {
		return nil, apperrors.NewForbiddenError(ticket.ErrAccessDenied.Error())
	}

	if err := t.UpdateDetails(cmd.Subject, cmd.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, apperrors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "actor_id", cmd.ActorID)
	return t, nil
}
