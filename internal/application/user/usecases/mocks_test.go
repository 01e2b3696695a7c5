package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"campusdesk/internal/application/user/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

func noopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockUserRepo struct {
	createFn           func(ctx context.Context, u *user.User) error
	updateFn           func(ctx context.Context, u *user.User) error
	deleteFn           func(ctx context.Context, userID uint) error
	getByIDFn          func(ctx context.Context, userID uint) (*user.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*user.User, error)
	getByVerTokenFn    func(ctx context.Context, tokenHash string) (*user.User, error)
	getByResetTokenFn  func(ctx context.Context, tokenHash string) (*user.User, error)
	getByLoginTokenFn  func(ctx context.Context, tokenHash string) (*user.User, error)
	existsByEmailFn    func(ctx context.Context, email string) (bool, error)
	existsByCampusIDFn func(ctx context.Context, campusID string) (bool, error)
	listFn             func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
	countAllFn         func(ctx context.Context) (int64, error)
	countVerifiedFn    func(ctx context.Context) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID)
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	if m.getByVerTokenFn != nil {
		return m.getByVerTokenFn(ctx, tokenHash)
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	if m.getByResetTokenFn != nil {
		return m.getByResetTokenFn(ctx, tokenHash)
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByLoginLinkTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	if m.getByLoginTokenFn != nil {
		return m.getByLoginTokenFn(ctx, tokenHash)
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByCampusID(ctx context.Context, campusID string) (bool, error) {
	if m.existsByCampusIDFn != nil {
		return m.existsByCampusIDFn(ctx, campusID)
	}
	return false, nil
}

func (m *mockUserRepo) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

func (m *mockUserRepo) CountVerified(ctx context.Context) (int64, error) {
	if m.countVerifiedFn != nil {
		return m.countVerifiedFn(ctx)
	}
	return 0, nil
}

type mockSessionRepo struct {
	createFn         func(session *user.Session) error
	getByIDFn        func(sessionID string) (*user.Session, error)
	deleteFn         func(sessionID string) error
	deleteByUserIDFn func(userID uint) error
	deleted          []string
}

func (m *mockSessionRepo) Create(session *user.Session) error {
	if m.createFn != nil {
		return m.createFn(session)
	}
	return nil
}

func (m *mockSessionRepo) GetByID(sessionID string) (*user.Session, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepo) GetByUserID(userID uint) ([]*user.Session, error) { return nil, nil }

func (m *mockSessionRepo) Update(session *user.Session) error { return nil }

func (m *mockSessionRepo) Delete(sessionID string) error {
	m.deleted = append(m.deleted, sessionID)
	if m.deleteFn != nil {
		return m.deleteFn(sessionID)
	}
	return nil
}

func (m *mockSessionRepo) DeleteByUserID(userID uint) error {
	if m.deleteByUserIDFn != nil {
		return m.deleteByUserIDFn(userID)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired() error { return nil }

type mockActivityRepo struct {
	logs []*activity.Log
}

func (m *mockActivityRepo) Create(ctx context.Context, log *activity.Log) error {
	m.logs = append(m.logs, log)
	return log.SetID(uint(len(m.logs)))
}

func (m *mockActivityRepo) ListRecent(ctx context.Context, limit int) ([]*activity.Log, error) {
	return m.logs, nil
}

func (m *mockActivityRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*activity.Log, int64, error) {
	return m.logs, int64(len(m.logs)), nil
}

func (m *mockActivityRepo) DeleteByUserID(ctx context.Context, userID uint) error { return nil }

type mockEmailService struct {
	verificationSent []string
	resetSent        []string
	loginLinkSent    []string
	failWith         error
}

func (m *mockEmailService) SendVerificationEmail(to, token string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.verificationSent = append(m.verificationSent, to)
	return nil
}

func (m *mockEmailService) SendPasswordResetEmail(to, token string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.resetSent = append(m.resetSent, to)
	return nil
}

func (m *mockEmailService) SendLoginLinkEmail(to, token string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.loginLinkSent = append(m.loginLinkSent, to)
	return nil
}

type mockJWTService struct{}

func (m *mockJWTService) Generate(userID uint, sessionID string, role authorization.UserRole) (*auth.TokenPair, error) {
	return &auth.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}, nil
}

func (m *mockJWTService) VerifyRefresh(tokenString string) (*auth.Claims, error) {
	return &auth.Claims{}, nil
}

func newTestAuthHelper(userRepo user.Repository, sessionRepo user.SessionRepository, activityRepo activity.Repository) *helpers.AuthHelper {
	return helpers.NewAuthHelper(userRepo, sessionRepo, activityRepo, noopLogger())
}

func buildVerifiedUser(t *testing.T, hasher user.PasswordHasher) *user.User {
	t.Helper()

	email, err := vo.NewEmail("sam@campus.edu")
	require.NoError(t, err)
	name, err := vo.NewName("Sam", "Okafor")
	require.NoError(t, err)

	u, err := user.NewUser(email, name, authorization.RoleStudent, nil)
	require.NoError(t, err)
	require.NoError(t, u.SetID(1))

	if hasher != nil {
		password, err := vo.NewPassword("secret1234")
		require.NoError(t, err)
		require.NoError(t, u.SetPassword(password, hasher))
	}

	u.MarkVerified()
	return u
}

type passthroughHasher struct{}

func (passthroughHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (passthroughHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return user.ErrInvalidCredentials
	}
	return nil
}
