package usecases

import (
	"context"
	"fmt"
	"time"

	"campusdesk/internal/domain/ticket"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

const dateLayout = "2006-01-02"

type GetReportsCommand struct {
	// From and To are inclusive dates in YYYY-MM-DD form. Empty values
	// default to the last 30 days.
	From string
	To   string
}

type GetReportsResult struct {
	From   time.Time
	To     time.Time
	Report *ticket.Report
}

type GetReportsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetReportsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetReportsUseCase {
	return &GetReportsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetReportsUseCase) Execute(ctx context.Context, cmd GetReportsCommand) (*GetReportsResult, error) {
	from, to, err := resolveRange(cmd.From, cmd.To)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	report, err := uc.ticketRepo.GetReport(ctx, from, to)
	if err != nil {
		uc.logger.Errorw("failed to build report", "error", err)
		return nil, apperrors.NewInternalError("failed to build report")
	}

	return &GetReportsResult{From: from, To: to, Report: report}, nil
}

func resolveRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	var err error
	if fromStr != "" {
		from, err = time.Parse(dateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toStr != "" {
		to, err = time.Parse(dateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Inclusive end of day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("report range end must not precede its start")
	}
	return from, to, nil
}
