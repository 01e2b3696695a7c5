package usecases

import (
	"context"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

const recentLimit = 5

type DashboardResult struct {
	TotalUsers     int64
	VerifiedUsers  int64
	TicketStats    *ticket.Stats
	RecentTickets  []*ticket.Ticket
	RecentUsers    []*user.User
	RecentActivity []*activity.Log
}

type GetDashboardUseCase struct {
	userRepo     user.Repository
	ticketRepo   ticket.Repository
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewGetDashboardUseCase(
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	activityRepo activity.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:     userRepo,
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Execute gathers the numbers behind the admin landing page.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*DashboardResult, error) {
	totalUsers, err := uc.userRepo.CountAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}

	verifiedUsers, err := uc.userRepo.CountVerified(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count verified users", "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}

	ticketStats, err := uc.ticketRepo.GetStats(ctx, 0)
	if err != nil {
		uc.logger.Errorw("failed to get ticket stats", "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}

	recentTickets, err := uc.ticketRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent tickets", "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}

	recentUsers, _, err := uc.userRepo.List(ctx, user.Filter{Page: 1, PageSize: recentLimit})
	if err != nil {
		uc.logger.Errorw("failed to list recent users", "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}

	recentActivity, err := uc.activityRepo.ListRecent(ctx, recentLimit*2)
	if err != nil {
		uc.logger.Errorw("failed to list recent activity", "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}

	return &DashboardResult{
		TotalUsers:     totalUsers,
		VerifiedUsers:  verifiedUsers,
		TicketStats:    ticketStats,
		RecentTickets:  recentTickets,
		RecentUsers:    recentUsers,
		RecentActivity: recentActivity,
	}, nil
}
