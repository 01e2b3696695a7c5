package usecases

import (
	"context"
	"errors"
	"fmt"

	"campusdesk/internal/application/ticket/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole

	Status     string
	Resolution string
	IPAddress  string
	UserAgent  string
}

type ChangeStatusUseCase struct {
	ticketRepo   ticket.Repository
	userRepo     user.Repository
	emailService EmailService
	ticketHelper *helpers.TicketHelper
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	emailService EmailService,
	ticketHelper *helpers.TicketHelper,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		userRepo:     userRepo,
		emailService: emailService,
		ticketHelper: ticketHelper,
		logger:       logger,
	}
}

// Execute moves a ticket through its lifecycle. Queue roles drive the
// workflow; the owner may only reopen their own ticket.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ticket.Ticket, error) {
	target, err := vo.NewStatus(cmd.Status)
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

	if !canChangeStatus(t, cmd.ActorID, cmd.ActorRole, target) {
		return nil, apperrors.NewForbiddenError(ticket.ErrAccessDenied.Error())
	}

	previous := t.Status()
	if err := t.ChangeStatus(target, cmd.Resolution); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", t.ID())
		return nil, apperrors.NewInternalError("failed to save ticket")
	}

	client := helpers.ClientInfo{IPAddress: cmd.IPAddress, UserAgent: cmd.UserAgent}
	uc.ticketHelper.RecordActivity(ctx, cmd.ActorID, activity.ActionTicketStatus,
		fmt.Sprintf("changed ticket %s from %s to %s", t.Number(), previous, target), client)

	if target == vo.StatusResolved {
		uc.notifyResolved(ctx, t)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"from", previous.String(),
		"to", target.String(),
		"actor_id", cmd.ActorID,
	)
	return t, nil
}

func canChangeStatus(t *ticket.Ticket, actorID uint, actorRole authorization.UserRole, target vo.Status) bool {
	if actorRole.CanBeAssignee() {
		return true
	}
	// Owners can pull a ticket back into the queue, nothing else.
	return t.IsOwnedBy(actorID) && target == vo.StatusOpen
}

func (uc *ChangeStatusUseCase) notifyResolved(ctx context.Context, t *ticket.Ticket) {
	resolution := ""
	if t.Resolution() != nil {
		resolution = *t.Resolution()
	}

	uc.ticketHelper.Notify(ctx, t.UserID(), "Ticket resolved",
		fmt.Sprintf("Your ticket %s has been resolved.", t.Number()), notification.TypeSuccess)

	owner, err := uc.userRepo.GetByID(ctx, t.UserID())
	if err != nil {
		uc.logger.Warnw("failed to load owner for resolved mail", "error", err, "ticket_id", t.ID())
		return
	}
	if err := uc.emailService.SendTicketResolvedEmail(owner.Email().String(), t.Number(), resolution); err != nil {
		uc.logger.Warnw("failed to send resolved email", "error", err, "ticket_id", t.ID())
	}
}
