package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusdesk/internal/application/ticket/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

func noopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTicketRepo struct {
	createFn      func(ctx context.Context, t *ticket.Ticket) error
	updateFn      func(ctx context.Context, t *ticket.Ticket) error
	deleteFn      func(ctx context.Context, ticketID uint) error
	getByIDFn     func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	listFn        func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	countByYearFn func(ctx context.Context, year int) (int64, error)
	getStatsFn    func(ctx context.Context, userID uint) (*ticket.Stats, error)

	updated []*ticket.Ticket
	deleted []uint
}

func (m *mockTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	m.updated = append(m.updated, t)
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, ticketID uint) error {
	m.deleted = append(m.deleted, ticketID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, ticketID)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepo) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepo) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepo) CountByYear(ctx context.Context, year int) (int64, error) {
	if m.countByYearFn != nil {
		return m.countByYearFn(ctx, year)
	}
	return 0, nil
}

func (m *mockTicketRepo) GetStats(ctx context.Context, userID uint) (*ticket.Stats, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn(ctx, userID)
	}
	return &ticket.Stats{}, nil
}

func (m *mockTicketRepo) GetReport(ctx context.Context, from, to time.Time) (*ticket.Report, error) {
	return &ticket.Report{}, nil
}

type mockCommentRepo struct {
	created        []*ticket.Comment
	listFn         func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	deletedTickets []uint
}

func (m *mockCommentRepo) Create(ctx context.Context, c *ticket.Comment) error {
	m.created = append(m.created, c)
	return c.SetID(uint(len(m.created)))
}

func (m *mockCommentRepo) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepo) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	m.deletedTickets = append(m.deletedTickets, ticketID)
	return nil
}

type mockNotificationRepo struct {
	created []*notification.Notification
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	m.created = append(m.created, n)
	return n.SetID(uint(len(m.created)))
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

func (m *mockNotificationRepo) DeleteByUserID(ctx context.Context, userID uint) error { return nil }

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

type mockUserRepo struct {
	getByIDFn func(ctx context.Context, userID uint) (*user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error  { return nil }

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
	return nil, 0, nil
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockUserRepo) CountVerified(ctx context.Context) (int64, error) { return 0, nil }

type mockEmailService struct {
	resolvedSent []string
	failWith     error
}

func (m *mockEmailService) SendTicketResolvedEmail(to, ticketNumber, resolution string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.resolvedSent = append(m.resolvedSent, to)
	return nil
}

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestTicketHelper(ticketRepo *mockTicketRepo, notificationRepo *mockNotificationRepo, activityRepo *mockActivityRepo) *helpers.TicketHelper {
	return helpers.NewTicketHelper(ticketRepo, notificationRepo, activityRepo, noopLogger())
}

func buildTicket(t *testing.T, id, ownerID uint) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket("TKT-2026-0001", ownerID, "Wifi keeps dropping", "The library wifi disconnects every few minutes.", vo.CategoryNetwork, vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	return tk
}

func buildStaffUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()

	email, err := uservo.NewEmail("staff@campus.edu")
	require.NoError(t, err)
	name, err := uservo.NewName("Ada", "Nwosu")
	require.NoError(t, err)

	u, err := user.NewUser(email, name, role, nil)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	u.MarkVerified()
	return u
}
