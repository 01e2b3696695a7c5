package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/setting/usecases"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type SettingHandler struct {
	getUseCase    *usecases.GetSettingsUseCase
	updateUseCase *usecases.UpdateSettingsUseCase
	logger        logger.Interface
}

func NewSettingHandler(
	getUC *usecases.GetSettingsUseCase,
	updateUC *usecases.UpdateSettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getUseCase:    getUC,
		updateUseCase: updateUC,
		logger:        logger,
	}
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

func (h *SettingHandler) Get(c *gin.Context) {
	settings, err := h.getUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"settings": settingResponses(settings),
	})
}

func (h *SettingHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateSettingsCommand{
		ActorID:   principal.UserID,
		Settings:  req.Settings,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := h.updateUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings updated", nil)
}
