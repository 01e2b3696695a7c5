package usecases

import (
	"context"
	"fmt"

	"campusdesk/internal/application/ticket/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	Subject     string
	Description string
	Category    string
	Priority    string
	IPAddress   string
	UserAgent   string
}

type CreateTicketResult struct {
	Ticket *ticket.Ticket
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	numberGen    *ticket.NumberGenerator
	ticketHelper *helpers.TicketHelper
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	numberGen *ticket.NumberGenerator,
	ticketHelper *helpers.TicketHelper,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		numberGen:    numberGen,
		ticketHelper: ticketHelper,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Next(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, apperrors.NewInternalError("failed to generate ticket number")
	}

	newTicket, err := ticket.NewTicket(number, cmd.UserID, cmd.Subject, cmd.Description, category, priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to create ticket")
	}

	client := helpers.ClientInfo{IPAddress: cmd.IPAddress, UserAgent: cmd.UserAgent}
	uc.ticketHelper.RecordActivity(ctx, cmd.UserID, activity.ActionTicketCreate,
		fmt.Sprintf("created ticket %s", newTicket.Number()), client)
	uc.ticketHelper.Notify(ctx, cmd.UserID, "Ticket received",
		fmt.Sprintf("Your ticket %s has been received and will be reviewed by IT support.", newTicket.Number()),
		notification.TypeTicket)

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"number", newTicket.Number(),
		"user_id", cmd.UserID,
	)

	return &CreateTicketResult{Ticket: newTicket}, nil
}
