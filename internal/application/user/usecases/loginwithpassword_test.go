package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/config"
	apperrors "campusdesk/internal/shared/errors"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		IdleTimeoutMinutes: 30,
		DefaultExpDays:     1,
		RememberExpDays:    30,
	}
}

func newLoginUseCase(userRepo *mockUserRepo, sessionRepo *mockSessionRepo, activityRepo *mockActivityRepo) *LoginWithPasswordUseCase {
	return NewLoginWithPasswordUseCase(
		userRepo,
		passthroughHasher{},
		&mockJWTService{},
		newTestAuthHelper(userRepo, sessionRepo, activityRepo),
		testSessionConfig(),
		noopLogger(),
	)
}

func TestLoginWithPasswordUseCase_Success(t *testing.T) {
	u := buildVerifiedUser(t, passthroughHasher{})
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}
	sessionRepo := &mockSessionRepo{}
	activityRepo := &mockActivityRepo{}
	uc := newLoginUseCase(userRepo, sessionRepo, activityRepo)

	result, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    "sam@campus.edu",
		Password: "secret1234",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.NotNil(t, u.LastLoginAt())

	// Login lands in the audit trail.
	require.Len(t, activityRepo.logs, 1)
	assert.Equal(t, activity.ActionLogin, activityRepo.logs[0].Action())
}

func TestLoginWithPasswordUseCase_UnknownEmail(t *testing.T) {
	uc := newLoginUseCase(&mockUserRepo{}, &mockSessionRepo{}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    "ghost@campus.edu",
		Password: "whatever123",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, user.ErrInvalidCredentials.Error(), appErr.Message, "unknown email and bad password must be indistinguishable")
}

func TestLoginWithPasswordUseCase_UnverifiedRejected(t *testing.T) {
	email := buildVerifiedUser(t, passthroughHasher{})
	email.MarkUnverified()

	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, e string) (*user.User, error) {
			return email, nil
		},
	}
	uc := newLoginUseCase(userRepo, &mockSessionRepo{}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    "sam@campus.edu",
		Password: "secret1234",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Contains(t, appErr.Message, "verify")
}

func TestLoginWithPasswordUseCase_BadPasswordCountsFailure(t *testing.T) {
	u := buildVerifiedUser(t, passthroughHasher{})
	updates := 0
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
		updateFn: func(ctx context.Context, saved *user.User) error {
			updates++
			return nil
		},
	}
	uc := newLoginUseCase(userRepo, &mockSessionRepo{}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    "sam@campus.edu",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Equal(t, 1, u.GetAuthData().FailedLoginAttempts)
	assert.Equal(t, 1, updates, "failure counter must be persisted")
}

func TestLoginWithPasswordUseCase_LockedRejected(t *testing.T) {
	u := buildVerifiedUser(t, passthroughHasher{})
	for i := 0; i < 5; i++ {
		u.RecordFailedLogin()
	}
	require.True(t, u.IsLocked())

	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}
	uc := newLoginUseCase(userRepo, &mockSessionRepo{}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    "sam@campus.edu",
		Password: "secret1234",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "locked")
}
