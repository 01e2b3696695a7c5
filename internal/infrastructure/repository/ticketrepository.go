package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
)

// allowedTicketOrderByFields whitelists ORDER BY columns to keep user
// supplied sort parameters out of raw SQL.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"number":      true,
	"subject":     true,
	"status":      true,
	"priority":    true,
	"category":    true,
	"user_id":     true,
	"assignee_id": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes all columns so cleared pointers (resolution,
	// resolved_at, assignee) become NULL on reopen or unassign.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrNotFound
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.UserID != 0 {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.AssigneeID != 0 {
		tx = tx.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("number LIKE ? OR subject LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	orderBy := "created_at"
	if allowedTicketOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	var ticketModels []models.TicketModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := tx.Order(orderBy + " " + direction).Offset(offset).Limit(filter.PageSize).Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainSlice(ticketModels, total)
}

func (r *TicketRepository) ListRecent(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC").Limit(limit).Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	tickets, _, err := r.toDomainSlice(ticketModels, 0)
	return tickets, err
}

func (r *TicketRepository) CountByYear(ctx context.Context, year int) (int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by year: %w", err)
	}

	return count, nil
}

// GetStats returns ticket counts by status. A zero userID aggregates
// across all tickets.
func (r *TicketRepository) GetStats(ctx context.Context, userID uint) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
	if userID != 0 {
		tx = tx.Where("user_id = ?", userID)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := tx.Select("status, COUNT(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate ticket stats: %w", err)
	}

	stats := &ticket.Stats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch vo.Status(row.Status) {
		case vo.StatusOpen:
			stats.Open = row.Count
		case vo.StatusInProgress:
			stats.InProgress = row.Count
		case vo.StatusResolved:
			stats.Resolved = row.Count
		case vo.StatusClosed:
			stats.Closed = row.Count
		}
	}

	return stats, nil
}

func (r *TicketRepository) GetReport(ctx context.Context, from, to time.Time) (*ticket.Report, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	base := func() *gorm.DB {
		return tx.Model(&models.TicketModel{}).Where("created_at >= ? AND created_at < ?", from, to)
	}

	report := &ticket.Report{}

	if err := base().Count(&report.TotalTickets).Error; err != nil {
		return nil, fmt.Errorf("failed to count report tickets: %w", err)
	}

	// Average resolution time is computed in Go so the query stays
	// portable between MySQL and the sqlite test driver.
	type resolvedRow struct {
		CreatedAt  time.Time
		ResolvedAt *time.Time
	}
	var resolved []resolvedRow
	if err := base().Where("resolved_at IS NOT NULL").
		Select("created_at, resolved_at").Scan(&resolved).Error; err != nil {
		return nil, fmt.Errorf("failed to load resolved tickets: %w", err)
	}

	report.ResolvedTickets = int64(len(resolved))
	if len(resolved) > 0 {
		var totalHours float64
		for _, row := range resolved {
			totalHours += row.ResolvedAt.Sub(row.CreatedAt).Hours()
		}
		report.AvgResolutionHrs = totalHours / float64(len(resolved))
	}

	var err error
	if report.ByStatus, err = r.groupBy(base(), "status"); err != nil {
		return nil, err
	}
	if report.ByPriority, err = r.groupBy(base(), "priority"); err != nil {
		return nil, err
	}
	if report.ByCategory, err = r.groupBy(base(), "category"); err != nil {
		return nil, err
	}

	return report, nil
}

func (r *TicketRepository) groupBy(tx *gorm.DB, column string) ([]ticket.ReportRow, error) {
	type bucket struct {
		Label string
		Count int64
	}
	var buckets []bucket
	if err := tx.Select(column + " as label, COUNT(*) as count").Group(column).Scan(&buckets).Error; err != nil {
		return nil, fmt.Errorf("failed to group tickets by %s: %w", column, err)
	}

	rows := make([]ticket.ReportRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, ticket.ReportRow{Label: b.Label, Count: b.Count})
	}
	return rows, nil
}

func (r *TicketRepository) toDomainSlice(ticketModels []models.TicketModel, total int64) ([]*ticket.Ticket, int64, error) {
	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}
