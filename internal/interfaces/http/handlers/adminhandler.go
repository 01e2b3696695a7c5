package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/admin/usecases"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AdminHandler struct {
	dashboardUseCase     *usecases.GetDashboardUseCase
	reportsUseCase       *usecases.GetReportsUseCase
	listUsersUseCase     *usecases.ListUsersUseCase
	deleteUserUseCase    *usecases.DeleteUserUseCase
	setVerifiedUseCase   *usecases.SetUserVerifiedUseCase
	resetPasswordUseCase *usecases.AdminResetPasswordUseCase
	logger               logger.Interface
}

func NewAdminHandler(
	dashboardUC *usecases.GetDashboardUseCase,
	reportsUC *usecases.GetReportsUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	setVerifiedUC *usecases.SetUserVerifiedUseCase,
	resetPasswordUC *usecases.AdminResetPasswordUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		dashboardUseCase:     dashboardUC,
		reportsUseCase:       reportsUC,
		listUsersUseCase:     listUsersUC,
		deleteUserUseCase:    deleteUserUC,
		setVerifiedUseCase:   setVerifiedUC,
		resetPasswordUseCase: resetPasswordUC,
		logger:               logger,
	}
}

type SetVerifiedRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"total_users":     result.TotalUsers,
		"verified_users":  result.VerifiedUsers,
		"ticket_stats":    statsResponse(result.TicketStats),
		"recent_tickets":  ticketResponses(result.RecentTickets),
		"recent_users":    userResponses(result.RecentUsers),
		"recent_activity": activityResponses(result.RecentActivity),
	})
}

func (h *AdminHandler) Reports(c *gin.Context) {
	cmd := usecases.GetReportsCommand{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	result, err := h.reportsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ReportResponse{
		From:             result.From,
		To:               result.To,
		TotalTickets:     result.Report.TotalTickets,
		ResolvedTickets:  result.Report.ResolvedTickets,
		AvgResolutionHrs: result.Report.AvgResolutionHrs,
		ByStatus:         reportRowResponses(result.Report.ByStatus),
		ByPriority:       reportRowResponses(result.Report.ByPriority),
		ByCategory:       reportRowResponses(result.Report.ByCategory),
	})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListUsersCommand{
		Role:     c.Query("role"),
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if v := c.Query("verified"); v != "" {
		verified, err := strconv.ParseBool(v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid verified filter")
			return
		}
		cmd.Verified = &verified
	}

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"users": userResponses(result.Users),
		"total": result.Total,
		"page":  result.Page,
		"pages": result.Pages,
	})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	cmd := usecases.DeleteUserCommand{
		UserID:    userID,
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := h.deleteUserUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deleted", nil)
}

func (h *AdminHandler) SetUserVerified(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	var req SetVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SetUserVerifiedCommand{
		UserID:   userID,
		Verified: *req.Verified,
	}

	updated, err := h.setVerifiedUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user verification updated", userResponse(updated))
}

func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	result, err := h.resetPasswordUseCase.Execute(c.Request.Context(), usecases.AdminResetPasswordCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset, share the temporary password securely", gin.H{
		"temp_password": result.TempPassword,
	})
}

func (h *AdminHandler) userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return 0, false
	}
	return uint(id), true
}
