package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
)

func newAssignUseCase(ticketRepo *mockTicketRepo, userRepo *mockUserRepo, notificationRepo *mockNotificationRepo) *AssignTicketUseCase {
	return NewAssignTicketUseCase(ticketRepo, userRepo,
		newTestTicketHelper(ticketRepo, notificationRepo, &mockActivityRepo{}), noopLogger())
}

func TestAssignTicketUseCase_Success(t *testing.T) {
	tk := buildTicket(t, 1, 7)
	staff := buildStaffUser(t, 3, authorization.RoleStaff)

	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return staff, nil
		},
	}
	notificationRepo := &mockNotificationRepo{}
	uc := newAssignUseCase(ticketRepo, userRepo, notificationRepo)

	result, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   1,
		ActorID:    2,
		ActorRole:  authorization.RoleAdmin,
		AssigneeID: 3,
	})

	require.NoError(t, err)
	assert.True(t, result.IsAssignedTo(3))
	assert.Equal(t, vo.StatusInProgress, result.Status(), "assigning an open ticket starts work on it")

	require.Len(t, notificationRepo.created, 1)
	assert.Equal(t, uint(3), notificationRepo.created[0].UserID())
}

func TestAssignTicketUseCase_NonAdminForbidden(t *testing.T) {
	uc := newAssignUseCase(&mockTicketRepo{}, &mockUserRepo{}, &mockNotificationRepo{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   1,
		ActorID:    3,
		ActorRole:  authorization.RoleStaff,
		AssigneeID: 3,
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestAssignTicketUseCase_StudentAssigneeRejected(t *testing.T) {
	tk := buildTicket(t, 1, 7)
	student := buildStaffUser(t, 9, authorization.RoleStudent)

	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return student, nil
		},
	}
	uc := newAssignUseCase(ticketRepo, userRepo, &mockNotificationRepo{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   1,
		ActorID:    2,
		ActorRole:  authorization.RoleAdmin,
		AssigneeID: 9,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "staff or admin")
	assert.Nil(t, tk.AssigneeID())
}

func TestAssignTicketUseCase_ZeroAssigneeUnassigns(t *testing.T) {
	tk := buildTicket(t, 1, 7)
	require.NoError(t, tk.Assign(3))

	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newAssignUseCase(ticketRepo, &mockUserRepo{}, &mockNotificationRepo{})

	result, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:  1,
		ActorID:   2,
		ActorRole: authorization.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssigneeID())
}
