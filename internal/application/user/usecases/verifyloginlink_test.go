package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	apperrors "campusdesk/internal/shared/errors"
)

func TestRequestLoginLinkUseCase_Success(t *testing.T) {
	u := buildVerifiedUser(t, nil)
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, e string) (*user.User, error) {
			return u, nil
		},
	}
	email := &mockEmailService{}
	uc := NewRequestLoginLinkUseCase(userRepo, email, testTokenConfig(), noopLogger())

	err := uc.Execute(context.Background(), RequestLoginLinkCommand{
		Email:     "sam@campus.edu",
		FirstName: "Sam",
		LastName:  "Okafor",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"sam@campus.edu"}, email.loginLinkSent)
	assert.NotNil(t, u.GetAuthData().LoginLinkToken)
}

func TestRequestLoginLinkUseCase_NameMismatchSilent(t *testing.T) {
	u := buildVerifiedUser(t, nil)
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, e string) (*user.User, error) {
			return u, nil
		},
	}
	email := &mockEmailService{}
	uc := NewRequestLoginLinkUseCase(userRepo, email, testTokenConfig(), noopLogger())

	err := uc.Execute(context.Background(), RequestLoginLinkCommand{
		Email:     "sam@campus.edu",
		FirstName: "Wrong",
		LastName:  "Person",
	})

	require.NoError(t, err, "mismatch must not be revealed")
	assert.Empty(t, email.loginLinkSent)
	assert.Nil(t, u.GetAuthData().LoginLinkToken)
}

func TestRequestLoginLinkUseCase_UnknownEmailSilent(t *testing.T) {
	email := &mockEmailService{}
	uc := NewRequestLoginLinkUseCase(&mockUserRepo{}, email, testTokenConfig(), noopLogger())

	err := uc.Execute(context.Background(), RequestLoginLinkCommand{
		Email:     "ghost@campus.edu",
		FirstName: "Sam",
		LastName:  "Okafor",
	})

	require.NoError(t, err)
	assert.Empty(t, email.loginLinkSent)
}

func newVerifyLoginLinkUseCase(userRepo *mockUserRepo, sessionRepo *mockSessionRepo, activityRepo *mockActivityRepo) *VerifyLoginLinkUseCase {
	return NewVerifyLoginLinkUseCase(
		userRepo,
		&mockJWTService{},
		newTestAuthHelper(userRepo, sessionRepo, activityRepo),
		testSessionConfig(),
		noopLogger(),
	)
}

func TestVerifyLoginLinkUseCase_Success(t *testing.T) {
	u := buildVerifiedUser(t, nil)
	token, err := u.GenerateLoginLinkToken(15 * time.Minute)
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		getByLoginTokenFn: func(ctx context.Context, tokenHash string) (*user.User, error) {
			require.Equal(t, token.Hash(), tokenHash)
			return u, nil
		},
	}
	sessionRepo := &mockSessionRepo{}
	uc := newVerifyLoginLinkUseCase(userRepo, sessionRepo, &mockActivityRepo{})

	result, err := uc.Execute(context.Background(), VerifyLoginLinkCommand{Token: token.Value()})

	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Nil(t, u.GetAuthData().LoginLinkToken, "token is single use")
}

func TestVerifyLoginLinkUseCase_ExpiredToken(t *testing.T) {
	u := buildVerifiedUser(t, nil)
	token, err := u.GenerateLoginLinkToken(-time.Minute)
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		getByLoginTokenFn: func(ctx context.Context, tokenHash string) (*user.User, error) {
			return u, nil
		},
	}
	uc := newVerifyLoginLinkUseCase(userRepo, &mockSessionRepo{}, &mockActivityRepo{})

	_, err = uc.Execute(context.Background(), VerifyLoginLinkCommand{Token: token.Value()})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestVerifyLoginLinkUseCase_UnverifiedAccountRejected(t *testing.T) {
	u := buildVerifiedUser(t, nil)
	token, err := u.GenerateLoginLinkToken(15 * time.Minute)
	require.NoError(t, err)
	u.MarkUnverified()

	userRepo := &mockUserRepo{
		getByLoginTokenFn: func(ctx context.Context, tokenHash string) (*user.User, error) {
			return u, nil
		},
	}
	uc := newVerifyLoginLinkUseCase(userRepo, &mockSessionRepo{}, &mockActivityRepo{})

	_, err = uc.Execute(context.Background(), VerifyLoginLinkCommand{Token: token.Value()})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.NotNil(t, u.GetAuthData().LoginLinkToken, "rejection must not consume the token")
}

func TestLogoutUseCase_DestroysSession(t *testing.T) {
	sessionRepo := &mockSessionRepo{}
	activityRepo := &mockActivityRepo{}
	uc := NewLogoutUseCase(sessionRepo, newTestAuthHelper(&mockUserRepo{}, sessionRepo, activityRepo), noopLogger())

	uc.Execute(context.Background(), LogoutCommand{SessionID: "sess-1", UserID: 1})

	assert.Equal(t, []string{"sess-1"}, sessionRepo.deleted)
	require.Len(t, activityRepo.logs, 1)
}
