package helpers

import (
	"context"
	"errors"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/authorization"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

// ClientInfo carries the request metadata recorded in activity logs.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// TicketHelper bundles the plumbing every ticket use case needs: loading
// a ticket with an access check, and the best-effort activity log and
// in-app notification writes that must never fail the main operation.
type TicketHelper struct {
	ticketRepo       ticket.Repository
	notificationRepo notification.Repository
	activityRepo     activity.Repository
	logger           logger.Interface
}

func NewTicketHelper(
	ticketRepo ticket.Repository,
	notificationRepo notification.Repository,
	activityRepo activity.Repository,
	logger logger.Interface,
) *TicketHelper {
	return &TicketHelper{
		ticketRepo:       ticketRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		logger:           logger,
	}
}

// GetTicketForActor loads a ticket and checks the actor may see it.
// Owners, the current assignee, and queue roles all have access.
func (h *TicketHelper) GetTicketForActor(ctx context.Context, ticketID, actorID uint, actorRole authorization.UserRole) (*ticket.Ticket, error) {
	t, err := h.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		h.logger.Errorw("failed to get ticket", "error", err, "ticket_id", ticketID)
		return nil, apperrors.NewInternalError("failed to get ticket")
	}

	if !CanViewTicket(t, actorID, actorRole) {
		return nil, apperrors.NewForbiddenError(ticket.ErrAccessDenied.Error())
	}

	return t, nil
}

// CanViewTicket reports whether the actor may read the ticket.
func CanViewTicket(t *ticket.Ticket, actorID uint, actorRole authorization.UserRole) bool {
	if actorRole.CanBeAssignee() {
		return true
	}
	return t.IsOwnedBy(actorID)
}

// RecordActivity writes an audit entry. Failures are logged and swallowed
// so the audit trail never breaks the operation it describes.
func (h *TicketHelper) RecordActivity(ctx context.Context, userID uint, action, description string, client ClientInfo) {
	log, err := activity.NewLog(userID, action, description, client.IPAddress, client.UserAgent)
	if err != nil {
		h.logger.Warnw("failed to build activity log", "error", err, "action", action)
		return
	}
	if err := h.activityRepo.Create(ctx, log); err != nil {
		h.logger.Warnw("failed to record activity", "error", err, "action", action)
	}
}

// Notify creates an in-app notification, best effort.
func (h *TicketHelper) Notify(ctx context.Context, userID uint, title, message string, notifType notification.Type) {
	n, err := notification.NewNotification(userID, title, message, notifType)
	if err != nil {
		h.logger.Warnw("failed to build notification", "error", err, "user_id", userID)
		return
	}
	if err := h.notificationRepo.Create(ctx, n); err != nil {
		h.logger.Warnw("failed to create notification", "error", err, "user_id", userID)
	}
}
