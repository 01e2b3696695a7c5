package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminUsecases "campusdesk/internal/application/admin/usecases"
	notificationUsecases "campusdesk/internal/application/notification/usecases"
	settingUsecases "campusdesk/internal/application/setting/usecases"
	ticketHelpers "campusdesk/internal/application/ticket/helpers"
	ticketUsecases "campusdesk/internal/application/ticket/usecases"
	userHelpers "campusdesk/internal/application/user/helpers"
	userUsecases "campusdesk/internal/application/user/usecases"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/cache"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/email"
	"campusdesk/internal/infrastructure/ratelimit"
	"campusdesk/internal/infrastructure/repository"
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers, and middleware. It
// owns no goroutines; shutdown is handled by the server command.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	authHandler         *handlers.AuthHandler
	ticketHandler       *handlers.TicketHandler
	notificationHandler *handlers.NotificationHandler
	adminHandler        *handlers.AdminHandler
	settingHandler      *handlers.SettingHandler

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.Limiter
}

// NewContainer builds the full dependency graph on top of the database
// handle. A missing Redis connection disables rate limiting but never
// blocks startup.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	activityRepo := repository.NewActivityLogRepository(gormDB)
	settingRepo := repository.NewSystemSettingRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
	markdownService := markdown.NewService()

	var rateLimiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warnw("redis unavailable, rate limiting disabled", "error", err)
		} else {
			rateLimiter = ratelimit.NewRedisRateLimiter(redisClient)
		}
	}

	authHelper := userHelpers.NewAuthHelper(userRepo, sessionRepo, activityRepo, log)
	ticketHelper := ticketHelpers.NewTicketHelper(ticketRepo, notificationRepo, activityRepo, log)
	numberGen := ticket.NewNumberGenerator(ticketRepo)

	registerUC := userUsecases.NewRegisterUseCase(userRepo, hasher, emailService, authHelper, cfg.Auth.Token, log)
	loginUC := userUsecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, authHelper, cfg.Auth.Session, log)
	verifyEmailUC := userUsecases.NewVerifyEmailUseCase(userRepo, authHelper, log)
	requestResetUC := userUsecases.NewRequestPasswordResetUseCase(userRepo, emailService, cfg.Auth.Token, log)
	resetPasswordUC := userUsecases.NewResetPasswordUseCase(userRepo, sessionRepo, hasher, authHelper, log)
	requestLoginLinkUC := userUsecases.NewRequestLoginLinkUseCase(userRepo, emailService, cfg.Auth.Token, log)
	verifyLoginLinkUC := userUsecases.NewVerifyLoginLinkUseCase(userRepo, jwtService, authHelper, cfg.Auth.Session, log)
	refreshTokenUC := userUsecases.NewRefreshTokenUseCase(userRepo, sessionRepo, jwtService, log)
	logoutUC := userUsecases.NewLogoutUseCase(sessionRepo, authHelper, log)
	getProfileUC := userUsecases.NewGetProfileUseCase(userRepo, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, numberGen, ticketHelper, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(commentRepo, ticketHelper, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(ticketRepo, commentRepo, ticketHelper, log)
	assignTicketUC := ticketUsecases.NewAssignTicketUseCase(ticketRepo, userRepo, ticketHelper, log)
	changeStatusUC := ticketUsecases.NewChangeStatusUseCase(ticketRepo, userRepo, emailService, ticketHelper, log)
	changePriorityUC := ticketUsecases.NewChangePriorityUseCase(ticketRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, commentRepo, txManager, ticketHelper, log)
	ticketStatsUC := ticketUsecases.NewGetTicketStatsUseCase(ticketRepo, log)

	listNotificationsUC := notificationUsecases.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationUsecases.NewMarkReadUseCase(notificationRepo, log)
	markAllReadUC := notificationUsecases.NewMarkAllReadUseCase(notificationRepo, log)

	dashboardUC := adminUsecases.NewGetDashboardUseCase(userRepo, ticketRepo, activityRepo, log)
	reportsUC := adminUsecases.NewGetReportsUseCase(ticketRepo, log)
	listUsersUC := adminUsecases.NewListUsersUseCase(userRepo, log)
	deleteUserUC := adminUsecases.NewDeleteUserUseCase(userRepo, sessionRepo, notificationRepo, activityRepo, txManager, log)
	setVerifiedUC := adminUsecases.NewSetUserVerifiedUseCase(userRepo, log)
	adminResetPasswordUC := adminUsecases.NewAdminResetPasswordUseCase(userRepo, sessionRepo, hasher, log)

	getSettingsUC := settingUsecases.NewGetSettingsUseCase(settingRepo, log)
	updateSettingsUC := settingUsecases.NewUpdateSettingsUseCase(settingRepo, activityRepo, log)

	return &Container{
		engine: engine,
		cfg:    cfg,
		log:    log,
		authHandler: handlers.NewAuthHandler(
			registerUC, loginUC, verifyEmailUC, requestResetUC, resetPasswordUC,
			requestLoginLinkUC, verifyLoginLinkUC, refreshTokenUC, logoutUC, getProfileUC,
			log, cfg.Auth.Cookie, cfg.Auth.JWT,
		),
		ticketHandler: handlers.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, addCommentUC,
			assignTicketUC, changeStatusUC, changePriorityUC, deleteTicketUC, ticketStatsUC,
			markdownService, log,
		),
		notificationHandler: handlers.NewNotificationHandler(listNotificationsUC, markReadUC, markAllReadUC, log),
		adminHandler: handlers.NewAdminHandler(
			dashboardUC, reportsUC, listUsersUC, deleteUserUC, setVerifiedUC, adminResetPasswordUC, log,
		),
		settingHandler: handlers.NewSettingHandler(getSettingsUC, updateSettingsUC, log),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, sessionRepo, cfg.Auth.Session, cfg.Auth.Cookie, log),
		rateLimiter:    rateLimiter,
	}
}
