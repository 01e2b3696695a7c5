package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
)

func setupTicketDB(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(&models.TicketModel{}, &models.CommentModel{}))

	return gormDB
}

func newTestTicket(t *testing.T, number string, userID uint, category vo.Category, priority vo.Priority) *ticket.Ticket {
	tk, err := ticket.NewTicket(number, userID, "Projector not working", "The projector in room B12 shows no signal.", category, priority)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_CreateAndGet(t *testing.T) {
	gormDB := setupTicketDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	t.Run("create assigns ID", func(t *testing.T) {
		tk := newTestTicket(t, "TKT-2026-0001", 1, vo.CategoryHardware, vo.PriorityHigh)

		require.NoError(t, repo.Create(ctx, tk))
		assert.NotZero(t, tk.ID())
	})

	t.Run("get by ID round-trips all fields", func(t *testing.T) {
		tk := newTestTicket(t, "TKT-2026-0002", 2, vo.CategoryNetwork, vo.PriorityMedium)
		require.NoError(t, repo.Create(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, tk.Number(), found.Number())
		assert.Equal(t, tk.Subject(), found.Subject())
		assert.Equal(t, vo.CategoryNetwork, found.Category())
		assert.Equal(t, vo.StatusOpen, found.Status())
		assert.Nil(t, found.AssigneeID())
	})

	t.Run("get by number", func(t *testing.T) {
		found, err := repo.GetByNumber(ctx, "TKT-2026-0002")
		require.NoError(t, err)
		assert.Equal(t, uint(2), found.UserID())
	})

	t.Run("unknown ID returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, ticket.ErrNotFound)
	})

	t.Run("duplicate number rejected", func(t *testing.T) {
		dup := newTestTicket(t, "TKT-2026-0001", 3, vo.CategoryOther, vo.PriorityLow)
		assert.Error(t, repo.Create(ctx, dup))
	})
}

func TestTicketRepository_Update(t *testing.T) {
	gormDB := setupTicketDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	tk := newTestTicket(t, "TKT-2026-0010", 1, vo.CategorySoftware, vo.PriorityMedium)
	require.NoError(t, repo.Create(ctx, tk))

	require.NoError(t, tk.Assign(7))
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, "Reinstalled the license server client."))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, found.Status())
	require.NotNil(t, found.AssigneeID())
	assert.Equal(t, uint(7), *found.AssigneeID())
	require.NotNil(t, found.Resolution())
	assert.NotNil(t, found.ResolvedAt())

	// Reopening must null out the resolution columns, not just skip them.
	require.NoError(t, found.ChangeStatus(vo.StatusOpen, ""))
	require.NoError(t, repo.Update(ctx, found))

	reopened, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, reopened.Status())
	assert.Nil(t, reopened.Resolution())
	assert.Nil(t, reopened.ResolvedAt())
}

func TestTicketRepository_List(t *testing.T) {
	gormDB := setupTicketDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	categories := []vo.Category{vo.CategoryNetwork, vo.CategoryHardware, vo.CategorySoftware}
	for i := 1; i <= 9; i++ {
		tk := newTestTicket(t, fmt.Sprintf("TKT-2026-%04d", i), uint(i%3+1), categories[i%3], vo.PriorityMedium)
		require.NoError(t, repo.Create(ctx, tk))
	}

	t.Run("filter by owner", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.Filter{UserID: 1, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		for _, tk := range tickets {
			assert.Equal(t, uint(1), tk.UserID())
		}
	})

	t.Run("filter by category", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.Filter{Category: "network", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
	})

	t.Run("search matches number", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.Filter{Search: "0004", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "TKT-2026-0004", tickets[0].Number())
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.Filter{Page: 2, PageSize: 4})
		require.NoError(t, err)
		assert.EqualValues(t, 9, total)
		assert.Len(t, tickets, 4)
	})

	t.Run("sort whitelist falls back on unknown column", func(t *testing.T) {
		_, _, err := repo.List(ctx, ticket.Filter{SortBy: "status; DROP TABLE tickets", Page: 1, PageSize: 5})
		assert.NoError(t, err)
	})
}

func TestTicketRepository_Aggregates(t *testing.T) {
	gormDB := setupTicketDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	open := newTestTicket(t, "TKT-2026-0100", 1, vo.CategoryAccount, vo.PriorityLow)
	require.NoError(t, repo.Create(ctx, open))

	resolved := newTestTicket(t, "TKT-2026-0101", 1, vo.CategoryNetwork, vo.PriorityUrgent)
	require.NoError(t, repo.Create(ctx, resolved))
	require.NoError(t, resolved.ChangeStatus(vo.StatusResolved, "Replaced the switch port."))
	require.NoError(t, repo.Update(ctx, resolved))

	other := newTestTicket(t, "TKT-2026-0102", 2, vo.CategoryNetwork, vo.PriorityHigh)
	require.NoError(t, repo.Create(ctx, other))

	t.Run("stats scoped to one user", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 2, stats.Total)
		assert.EqualValues(t, 1, stats.Open)
		assert.EqualValues(t, 1, stats.Resolved)
	})

	t.Run("stats across all users", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 3, stats.Total)
		assert.EqualValues(t, 2, stats.Open)
	})

	t.Run("count by year", func(t *testing.T) {
		count, err := repo.CountByYear(ctx, time.Now().Year())
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)

		count, err = repo.CountByYear(ctx, time.Now().Year()-1)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("report buckets and resolution average", func(t *testing.T) {
		from := time.Now().Add(-24 * time.Hour)
		to := time.Now().Add(24 * time.Hour)

		report, err := repo.GetReport(ctx, from, to)
		require.NoError(t, err)
		assert.EqualValues(t, 3, report.TotalTickets)
		assert.EqualValues(t, 1, report.ResolvedTickets)
		assert.GreaterOrEqual(t, report.AvgResolutionHrs, 0.0)

		byCategory := map[string]int64{}
		for _, row := range report.ByCategory {
			byCategory[row.Label] = row.Count
		}
		assert.EqualValues(t, 2, byCategory["network"])
		assert.EqualValues(t, 1, byCategory["account"])
	})
}

func TestTicketRepository_Delete(t *testing.T) {
	gormDB := setupTicketDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	tk := newTestTicket(t, "TKT-2026-0200", 1, vo.CategoryOther, vo.PriorityLow)
	require.NoError(t, repo.Create(ctx, tk))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.GetByID(ctx, tk.ID())
	assert.ErrorIs(t, err, ticket.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, tk.ID()), ticket.ErrNotFound)
}

func TestCommentRepository(t *testing.T) {
	gormDB := setupTicketDB(t)
	ticketRepo := NewTicketRepository(gormDB)
	commentRepo := NewCommentRepository(gormDB)
	ctx := context.Background()

	tk := newTestTicket(t, "TKT-2026-0300", 1, vo.CategoryHardware, vo.PriorityMedium)
	require.NoError(t, ticketRepo.Create(ctx, tk))

	first, err := ticket.NewComment(tk.ID(), 1, "Tried rebooting, no change.")
	require.NoError(t, err)
	require.NoError(t, commentRepo.Create(ctx, first))
	assert.NotZero(t, first.ID())

	second, err := ticket.NewComment(tk.ID(), 7, "Please bring the laptop to the service desk.")
	require.NoError(t, err)
	require.NoError(t, commentRepo.Create(ctx, second))

	t.Run("list returns comments oldest first", func(t *testing.T) {
		comments, err := commentRepo.ListByTicketID(ctx, tk.ID())
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, first.ID(), comments[0].ID())
		assert.Equal(t, second.ID(), comments[1].ID())
	})

	t.Run("delete by ticket removes all", func(t *testing.T) {
		require.NoError(t, commentRepo.DeleteByTicketID(ctx, tk.ID()))

		comments, err := commentRepo.ListByTicketID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
