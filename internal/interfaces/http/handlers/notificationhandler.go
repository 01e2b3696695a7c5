package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/notification/usecases"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listUseCase        *usecases.ListNotificationsUseCase
	markReadUseCase    *usecases.MarkReadUseCase
	markAllReadUseCase *usecases.MarkAllReadUseCase
	logger             logger.Interface
}

func NewNotificationHandler(
	listUC *usecases.ListNotificationsUseCase,
	markReadUC *usecases.MarkReadUseCase,
	markAllReadUC *usecases.MarkAllReadUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUseCase:        listUC,
		markReadUseCase:    markReadUC,
		markAllReadUseCase: markAllReadUC,
		logger:             logger,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	pagination := utils.ParsePagination(c)

	cmd := usecases.ListNotificationsCommand{
		UserID:   principal.UserID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notifications": notificationResponses(result.Notifications),
		"total":         result.Total,
		"unread":        result.Unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification ID")
		return
	}

	cmd := usecases.MarkReadCommand{
		NotificationID: uint(id),
		UserID:         principal.UserID,
	}

	if err := h.markReadUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notification marked read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.markAllReadUseCase.Execute(c.Request.Context(), usecases.MarkAllReadCommand{UserID: principal.UserID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "all notifications marked read", nil)
}
