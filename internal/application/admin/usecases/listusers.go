package usecases

import (
	"context"

	"campusdesk/internal/domain/user"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListUsersCommand struct {
	Role     string
	Verified *bool
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []*user.User
	Total int64
	Page  int
	Pages int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	filter := user.Filter{
		Role:     cmd.Role,
		Verified: cmd.Verified,
		Search:   cmd.Search,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, apperrors.NewInternalError("failed to list users")
	}

	pages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	return &ListUsersResult{Users: users, Total: total, Page: filter.Page, Pages: pages}, nil
}
