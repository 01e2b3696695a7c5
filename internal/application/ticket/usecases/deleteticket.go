package usecases

import (
	"context"
	"errors"
	"fmt"

	"campusdesk/internal/application/ticket/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
	IPAddress string
	UserAgent string
}

type DeleteTicketUseCase struct {
	ticketRepo   ticket.Repository
	commentRepo  ticket.CommentRepository
	txManager    TransactionManager
	ticketHelper *helpers.TicketHelper
	logger       logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	txManager TransactionManager,
	ticketHelper *helpers.TicketHelper,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		txManager:    txManager,
		ticketHelper: ticketHelper,
		logger:       logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if !cmd.ActorRole.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can delete tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return apperrors.NewInternalError("failed to get ticket")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", t.ID())
		return apperrors.NewInternalError("failed to delete ticket")
	}

	uc.ticketHelper.RecordActivity(ctx, cmd.ActorID, activity.ActionTicketDelete,
		fmt.Sprintf("deleted ticket %s", t.Number()),
		helpers.ClientInfo{IPAddress: cmd.IPAddress, UserAgent: cmd.UserAgent})

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "number", t.Number(), "actor_id", cmd.ActorID)
	return nil
}
