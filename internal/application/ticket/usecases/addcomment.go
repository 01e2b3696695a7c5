package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/application/ticket/helpers"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
	Body      string
}

type AddCommentResult struct {
	Comment *ticket.Comment
}

type AddCommentUseCase struct {
	ticketRepo   ticket.Repository
	commentRepo  ticket.CommentRepository
	ticketHelper *helpers.TicketHelper
	logger       logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	ticketHelper *helpers.TicketHelper,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		ticketHelper: ticketHelper,
		logger:       logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	t, err := uc.ticketHelper.GetTicketForActor(ctx, cmd.TicketID, cmd.ActorID, cmd.ActorRole)
	if err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(t.ID(), cmd.ActorID, cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to create comment", "error", err, "ticket_id", t.ID())
		return nil, apperrors.NewInternalError("failed to add comment")
	}

	t.RecordComment()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Warnw("failed to bump ticket after comment", "error", err, "ticket_id", t.ID())
	}

	uc.notifyCounterpart(ctx, t, cmd.ActorID)

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "user_id", cmd.ActorID)
	return &AddCommentResult{Comment: comment}, nil
}

// notifyCounterpart alerts the other side of the conversation: the owner
// when staff comment, the assignee when the owner does.
func (uc *AddCommentUseCase) notifyCounterpart(ctx context.Context, t *ticket.Ticket, actorID uint) {
	message := fmt.Sprintf("New comment on ticket %s.", t.Number())

	if t.IsOwnedBy(actorID) {
		if t.AssigneeID() != nil && *t.AssigneeID() != actorID {
			uc.ticketHelper.Notify(ctx, *t.AssigneeID(), "New comment", message, notification.TypeTicket)
		}
		return
	}
	uc.ticketHelper.Notify(ctx, t.UserID(), "New comment", message, notification.TypeTicket)
}
