package usecases

import (
	"context"

	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetTicketStatsCommand struct {
	ActorID   uint
	ActorRole authorization.UserRole
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute returns ticket counts by status. Queue roles see portal-wide
// numbers, everyone else their own.
func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, cmd GetTicketStatsCommand) (*ticket.Stats, error) {
	var scopeUserID uint
	if !cmd.ActorRole.CanBeAssignee() {
		scopeUserID = cmd.ActorID
	}

	stats, err := uc.ticketRepo.GetStats(ctx, scopeUserID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket stats", "error", err, "actor_id", cmd.ActorID)
		return nil, apperrors.NewInternalError("failed to get ticket stats")
	}
	return stats, nil
}
