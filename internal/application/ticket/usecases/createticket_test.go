package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/ticket"
	apperrors "campusdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Success(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		countByYearFn: func(ctx context.Context, year int) (int64, error) {
			return 41, nil
		},
	}
	notificationRepo := &mockNotificationRepo{}
	activityRepo := &mockActivityRepo{}
	uc := NewCreateTicketUseCase(ticketRepo, ticket.NewNumberGenerator(ticketRepo),
		newTestTicketHelper(ticketRepo, notificationRepo, activityRepo), noopLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		UserID:      7,
		Subject:     "Projector broken in room B204",
		Description: "The projector shows no signal from any laptop.",
		Category:    "hardware",
		Priority:    "high",
	})

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("TKT-%d-0042", time.Now().Year()), result.Ticket.Number())
	assert.Equal(t, uint(7), result.Ticket.UserID())

	// The owner gets a confirmation notification and an audit entry.
	require.Len(t, notificationRepo.created, 1)
	assert.Equal(t, uint(7), notificationRepo.created[0].UserID())
	require.Len(t, activityRepo.logs, 1)
	assert.Equal(t, activity.ActionTicketCreate, activityRepo.logs[0].Action())
}

func TestCreateTicketUseCase_InvalidInput(t *testing.T) {
	ticketRepo := &mockTicketRepo{}
	uc := NewCreateTicketUseCase(ticketRepo, ticket.NewNumberGenerator(ticketRepo),
		newTestTicketHelper(ticketRepo, &mockNotificationRepo{}, &mockActivityRepo{}), noopLogger())

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{
			name: "unknown category",
			cmd:  CreateTicketCommand{UserID: 7, Subject: "s", Description: "d", Category: "plumbing", Priority: "low"},
		},
		{
			name: "unknown priority",
			cmd:  CreateTicketCommand{UserID: 7, Subject: "s", Description: "d", Category: "network", Priority: "whenever"},
		},
		{
			name: "empty subject",
			cmd:  CreateTicketCommand{UserID: 7, Subject: "  ", Description: "d", Category: "network", Priority: "low"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}
