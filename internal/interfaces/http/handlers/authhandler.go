package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase         *usecases.RegisterUseCase
	loginUseCase            *usecases.LoginWithPasswordUseCase
	verifyEmailUseCase      *usecases.VerifyEmailUseCase
	requestResetUseCase     *usecases.RequestPasswordResetUseCase
	resetPasswordUseCase    *usecases.ResetPasswordUseCase
	requestLoginLinkUseCase *usecases.RequestLoginLinkUseCase
	verifyLoginLinkUseCase  *usecases.VerifyLoginLinkUseCase
	refreshTokenUseCase     *usecases.RefreshTokenUseCase
	logoutUseCase           *usecases.LogoutUseCase
	getProfileUseCase       *usecases.GetProfileUseCase
	logger                  logger.Interface
	cookieConfig            config.CookieConfig
	jwtConfig               config.JWTConfig
}

func NewAuthHandler(
	registerUC *usecases.RegisterUseCase,
	loginUC *usecases.LoginWithPasswordUseCase,
	verifyEmailUC *usecases.VerifyEmailUseCase,
	requestResetUC *usecases.RequestPasswordResetUseCase,
	resetPasswordUC *usecases.ResetPasswordUseCase,
	requestLoginLinkUC *usecases.RequestLoginLinkUseCase,
	verifyLoginLinkUC *usecases.VerifyLoginLinkUseCase,
	refreshTokenUC *usecases.RefreshTokenUseCase,
	logoutUC *usecases.LogoutUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
	jwtConfig config.JWTConfig,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:         registerUC,
		loginUseCase:            loginUC,
		verifyEmailUseCase:      verifyEmailUC,
		requestResetUseCase:     requestResetUC,
		resetPasswordUseCase:    resetPasswordUC,
		requestLoginLinkUseCase: requestLoginLinkUC,
		verifyLoginLinkUseCase:  verifyLoginLinkUC,
		refreshTokenUseCase:     refreshTokenUC,
		logoutUseCase:           logoutUC,
		getProfileUseCase:       getProfileUC,
		logger:                  logger,
		cookieConfig:            cookieConfig,
		jwtConfig:               jwtConfig,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Role      string `json:"role" binding:"omitempty,oneof=student staff faculty"`
	CampusID  string `json:"campus_id" binding:"omitempty,max=20"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginLinkRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterCommand{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      req.Role,
		CampusID:  req.CampusID,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "registration successful, please verify your email"
	if !result.EmailSent {
		message = "registration successful, but the verification email could not be sent; contact IT support"
	}

	utils.SuccessResponse(c, http.StatusCreated, message, gin.H{
		"user":       result.User.GetDisplayInfo(),
		"email_sent": result.EmailSent,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginWithPasswordCommand{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.issueCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":       result.User.GetDisplayInfo(),
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var req VerifyEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "token is required")
			return
		}
		token = req.Token
	}

	cmd := usecases.VerifyEmailCommand{
		Token:     token,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := h.verifyEmailUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("email verification failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified successfully", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{Email: req.Email}); err != nil {
		h.logger.Errorw("password reset request failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the email exists, a password reset link has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
	}

	if err := h.resetPasswordUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("password reset failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset successfully, please log in again", nil)
}

func (h *AuthHandler) RequestLoginLink(c *gin.Context) {
	var req LoginLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RequestLoginLinkCommand{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := h.requestLoginLinkUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("login link request failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the details match an account, a login link has been sent", nil)
}

func (h *AuthHandler) VerifyLoginLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "token is required")
		return
	}

	cmd := usecases.VerifyLoginLinkCommand{
		Token:     token,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := h.verifyLoginLinkUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login link verification failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.issueCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":       result.User.GetDisplayInfo(),
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if token == "" {
		var req RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "refresh token is required")
			return
		}
		token = req.RefreshToken
	}

	result, err := h.refreshTokenUseCase.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.issueCookies(c, result.AccessToken, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", gin.H{
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if ok {
		h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
			SessionID: principal.SessionID,
			UserID:    principal.UserID,
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		})
	}

	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), principal.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", userResponse(profile))
}

func (h *AuthHandler) issueCookies(c *gin.Context, accessToken, refreshToken string) {
	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60
	utils.SetAuthCookies(c, h.cookieConfig, accessToken, refreshToken, accessMaxAge, refreshMaxAge)
}
