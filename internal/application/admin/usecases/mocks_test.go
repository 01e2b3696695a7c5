package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

func noopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockUserRepo struct {
	getByIDFn       func(ctx context.Context, userID uint) (*user.User, error)
	listFn          func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
	countAllFn      func(ctx context.Context) (int64, error)
	countVerifiedFn func(ctx context.Context) (int64, error)

	updated []*user.User
	deleted []uint
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	m.updated = append(m.updated, u)
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error {
	m.deleted = append(m.deleted, userID)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID)
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) GetByLoginLinkTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepo) ExistsByCampusID(ctx context.Context, campusID string) (bool, error) {
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
	revoked []uint
}

func (m *mockSessionRepo) Create(session *user.Session) error { return nil }

func (m *mockSessionRepo) GetByID(sessionID string) (*user.Session, error) { return nil, nil }

func (m *mockSessionRepo) GetByUserID(userID uint) ([]*user.Session, error) { return nil, nil }

func (m *mockSessionRepo) Update(session *user.Session) error { return nil }

func (m *mockSessionRepo) Delete(sessionID string) error { return nil }

func (m *mockSessionRepo) DeleteExpired() error { return nil }

func (m *mockSessionRepo) DeleteByUserID(userID uint) error {
	m.revoked = append(m.revoked, userID)
	return nil
}

type mockNotificationRepo struct {
	deletedUsers []uint
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, notificationID uint) (*notification.Notification, error) {
	return nil, notification.ErrNotFound
}

func (m *mockNotificationRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, notificationID uint) error { return nil }

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID uint) error { return nil }

func (m *mockNotificationRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	m.deletedUsers = append(m.deletedUsers, userID)
	return nil
}

type mockActivityRepo struct {
	logs         []*activity.Log
	deletedUsers []uint
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

func (m *mockActivityRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	m.deletedUsers = append(m.deletedUsers, userID)
	return nil
}

type mockTicketRepo struct {
	getStatsFn  func(ctx context.Context, userID uint) (*ticket.Stats, error)
	getReportFn func(ctx context.Context, from, to time.Time) (*ticket.Report, error)
}

func (m *mockTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepo) Delete(ctx context.Context, ticketID uint) error    { return nil }

func (m *mockTicketRepo) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepo) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepo) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepo) CountByYear(ctx context.Context, year int) (int64, error) { return 0, nil }

func (m *mockTicketRepo) GetStats(ctx context.Context, userID uint) (*ticket.Stats, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn(ctx, userID)
	}
	return &ticket.Stats{}, nil
}

func (m *mockTicketRepo) GetReport(ctx context.Context, from, to time.Time) (*ticket.Report, error) {
	if m.getReportFn != nil {
		return m.getReportFn(ctx, from, to)
	}
	return &ticket.Report{}, nil
}

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (fakeHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return user.ErrInvalidCredentials
	}
	return nil
}

func buildUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()

	email, err := vo.NewEmail("person@campus.edu")
	require.NoError(t, err)
	name, err := vo.NewName("Noor", "Haddad")
	require.NoError(t, err)

	u, err := user.NewUser(email, name, role, nil)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	u.MarkVerified()
	return u
}
