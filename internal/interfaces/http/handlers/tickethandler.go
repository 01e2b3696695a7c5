package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/ticket/usecases"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/services/markdown"
	"campusdesk/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase         *usecases.CreateTicketUseCase
	getUseCase            *usecases.GetTicketUseCase
	listUseCase           *usecases.ListTicketsUseCase
	updateUseCase         *usecases.UpdateTicketUseCase
	addCommentUseCase     *usecases.AddCommentUseCase
	assignUseCase         *usecases.AssignTicketUseCase
	changeStatusUseCase   *usecases.ChangeStatusUseCase
	changePriorityUseCase *usecases.ChangePriorityUseCase
	deleteUseCase         *usecases.DeleteTicketUseCase
	statsUseCase          *usecases.GetTicketStatsUseCase
	markdownService       markdown.Service
	logger                logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	assignUC *usecases.AssignTicketUseCase,
	changeStatusUC *usecases.ChangeStatusUseCase,
	changePriorityUC *usecases.ChangePriorityUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	statsUC *usecases.GetTicketStatsUseCase,
	markdownService markdown.Service,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase:         createUC,
		getUseCase:            getUC,
		listUseCase:           listUC,
		updateUseCase:         updateUC,
		addCommentUseCase:     addCommentUC,
		assignUseCase:         assignUC,
		changeStatusUseCase:   changeStatusUC,
		changePriorityUseCase: changePriorityUC,
		deleteUseCase:         deleteUC,
		statsUseCase:          statsUC,
		markdownService:       markdownService,
		logger:                logger,
	}
}

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=10,max=10000"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty"`
}

type UpdateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=10,max=10000"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id"`
}

type ChangeStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Resolution string `json:"resolution"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateTicketCommand{
		UserID:      principal.UserID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "ticket created", ticketResponse(result.Ticket))
}

func (h *TicketHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	pagination := utils.ParsePagination(c)
	assigneeID, _ := strconv.ParseUint(c.Query("assignee_id"), 10, 32)

	cmd := usecases.ListTicketsCommand{
		ActorID:    principal.UserID,
		ActorRole:  principal.Role,
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		AssigneeID: uint(assigneeID),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tickets": ticketResponses(result.Tickets),
		"total":   result.Total,
		"page":    result.Page,
		"pages":   result.Pages,
	})
}

func (h *TicketHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	cmd := usecases.GetTicketCommand{
		TicketID:  ticketID,
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.ticketDetail(result.Ticket, result.Comments))
}

func (h *TicketHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ActorID:     principal.UserID,
		ActorRole:   principal.Role,
		Subject:     req.Subject,
		Description: req.Description,
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", ticketResponse(updated))
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID:  ticketID,
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
		Body:      req.Body,
	}

	result, err := h.addCommentUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "comment added", h.commentResponse(result.Comment))
}

func (h *TicketHandler) Assign(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.AssignTicketCommand{
		TicketID:   ticketID,
		ActorID:    principal.UserID,
		ActorRole:  principal.Role,
		AssigneeID: req.AssigneeID,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	}

	updated, err := h.assignUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket assignment updated", ticketResponse(updated))
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID:   ticketID,
		ActorID:    principal.UserID,
		ActorRole:  principal.Role,
		Status:     req.Status,
		Resolution: req.Resolution,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	}

	updated, err := h.changeStatusUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status updated", ticketResponse(updated))
}

func (h *TicketHandler) ChangePriority(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	var req ChangePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ChangePriorityCommand{
		TicketID:  ticketID,
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
		Priority:  req.Priority,
	}

	updated, err := h.changePriorityUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket priority updated", ticketResponse(updated))
}

func (h *TicketHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID:  ticketID,
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", nil)
}

func (h *TicketHandler) Stats(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	cmd := usecases.GetTicketStatsCommand{
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
	}

	stats, err := h.statsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", statsResponse(stats))
}

func (h *TicketHandler) ticketIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket ID")
		return 0, false
	}
	return uint(id), true
}

func (h *TicketHandler) ticketDetail(t *ticket.Ticket, comments []*ticket.Comment) TicketDetailResponse {
	detail := TicketDetailResponse{
		TicketResponse:  ticketResponse(t),
		Description:     t.Description(),
		DescriptionHTML: h.renderHTML(t.Description()),
		Resolution:      t.Resolution(),
		Comments:        make([]CommentResponse, 0, len(comments)),
	}
	if t.Resolution() != nil {
		detail.ResolutionHTML = h.renderHTML(*t.Resolution())
	}
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, h.commentResponse(comment))
	}
	return detail
}

func (h *TicketHandler) commentResponse(comment *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID(),
		TicketID:  comment.TicketID(),
		UserID:    comment.UserID(),
		Body:      comment.Body(),
		BodyHTML:  h.renderHTML(comment.Body()),
		CreatedAt: comment.CreatedAt(),
	}
}

// renderHTML falls back to empty output when rendering fails. The raw
// markdown is still in the response; a render error must not break the
// ticket view.
func (h *TicketHandler) renderHTML(body string) string {
	html, err := h.markdownService.ToHTMLSanitized(body)
	if err != nil {
		h.logger.Warnw("markdown rendering failed", "error", err)
		return ""
	}
	return html
}
