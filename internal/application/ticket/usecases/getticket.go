package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/helpers"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Comments []*ticket.Comment
}

type GetTicketUseCase struct {
	commentRepo  ticket.CommentRepository
	ticketHelper *helpers.TicketHelper
	logger       logger.Interface
}

func NewGetTicketUseCase(
	commentRepo ticket.CommentRepository,
	ticketHelper *helpers.TicketHelper,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		commentRepo:  commentRepo,
		ticketHelper: ticketHelper,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketHelper.GetTicketForActor(ctx, cmd.TicketID, cmd.ActorID, cmd.ActorRole)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", t.ID())
		return nil, apperrors.NewInternalError("failed to load comments")
	}

	return &GetTicketResult{Ticket: t, Comments: comments}, nil
}
