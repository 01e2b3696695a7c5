package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
)

func TestAdminResetPasswordUseCase_Success(t *testing.T) {
	target := buildUser(t, 7, authorization.RoleStudent)
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return target, nil
		},
	}
	sessionRepo := &mockSessionRepo{}
	uc := NewAdminResetPasswordUseCase(userRepo, sessionRepo, fakeHasher{}, noopLogger())

	result, err := uc.Execute(context.Background(), AdminResetPasswordCommand{UserID: 7})

	require.NoError(t, err)
	assert.NotEmpty(t, result.TempPassword)
	assert.GreaterOrEqual(t, len(result.TempPassword), 8)

	// The temp password actually works against the stored hash.
	assert.NoError(t, target.VerifyPassword(result.TempPassword, fakeHasher{}))
	require.Len(t, userRepo.updated, 1)
	assert.Equal(t, []uint{7}, sessionRepo.revoked)
}

func TestAdminResetPasswordUseCase_NotFound(t *testing.T) {
	uc := NewAdminResetPasswordUseCase(&mockUserRepo{}, &mockSessionRepo{}, fakeHasher{}, noopLogger())

	_, err := uc.Execute(context.Background(), AdminResetPasswordCommand{UserID: 999})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSetUserVerifiedUseCase_Toggle(t *testing.T) {
	target := buildUser(t, 7, authorization.RoleStudent)
	target.MarkUnverified()

	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return target, nil
		},
	}
	uc := NewSetUserVerifiedUseCase(userRepo, noopLogger())

	result, err := uc.Execute(context.Background(), SetUserVerifiedCommand{UserID: 7, Verified: true})
	require.NoError(t, err)
	assert.True(t, result.IsEmailVerified())

	result, err = uc.Execute(context.Background(), SetUserVerifiedCommand{UserID: 7, Verified: false})
	require.NoError(t, err)
	assert.False(t, result.IsEmailVerified())
	assert.Len(t, userRepo.updated, 2)
}
