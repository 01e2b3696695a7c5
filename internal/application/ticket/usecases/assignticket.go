package usecases

import (
	"context"
	"errors"
	"fmt"

	"campusdesk/internal/application/ticket/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole

	// AssigneeID of zero unassigns the ticket.
	AssigneeID uint
	IPAddress  string
	UserAgent  string
}

type AssignTicketUseCase struct {
	ticketRepo   ticket.Repository
	userRepo     user.Repository
	ticketHelper *helpers.TicketHelper
	logger       logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	ticketHelper *helpers.TicketHelper,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:   ticketRepo,
		userRepo:     userRepo,
		ticketHelper: ticketHelper,
		logger:       logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*ticket.Ticket, error) {
	if !cmd.ActorRole.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can assign tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, apperrors.NewInternalError("failed to get ticket")
	}

	client := helpers.ClientInfo{IPAddress: cmd.IPAddress, UserAgent: cmd.UserAgent}

	if cmd.AssigneeID == 0 {
		if err := t.Unassign(); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", t.ID())
			return nil, apperrors.NewInternalError("failed to save ticket")
		}
		uc.ticketHelper.RecordActivity(ctx, cmd.ActorID, activity.ActionTicketAssign,
			fmt.Sprintf("unassigned ticket %s", t.Number()), client)
		return t, nil
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewValidationError(ticket.ErrInvalidAssignee.Error())
		}
		uc.logger.Errorw("failed to get assignee", "error", err, "assignee_id", cmd.AssigneeID)
		return nil, apperrors.NewInternalError("failed to get assignee")
	}

	if !assignee.Role().CanBeAssignee() {
		return nil, apperrors.NewValidationError(ticket.ErrInvalidAssignee.Error())
	}

	if err := t.Assign(assignee.ID()); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", t.ID())
		return nil, apperrors.NewInternalError("failed to save ticket")
	}

	uc.ticketHelper.RecordActivity(ctx, cmd.ActorID, activity.ActionTicketAssign,
		fmt.Sprintf("assigned ticket %s to %s", t.Number(), assignee.Name().DisplayName()), client)
	uc.ticketHelper.Notify(ctx, assignee.ID(), "Ticket assigned to you",
		fmt.Sprintf("Ticket %s has been assigned to you.", t.Number()), notification.TypeTicket)

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(),
		"assignee_id", assignee.ID(),
		"actor_id", cmd.ActorID,
	)
	return t, nil
}
