package application_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	tickethelpers "campusdesk/internal/application/ticket/helpers"
	ticketusecases "campusdesk/internal/application/ticket/usecases"
	userhelpers "campusdesk/internal/application/user/helpers"
	userusecases "campusdesk/internal/application/user/usecases"
	"campusdesk/internal/domain/ticket"
	tvo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/infrastructure/repository"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
)

// capturingMailer records outbound mail instead of talking to SMTP, which
// also exposes the plain token values the flows would otherwise only ever
// put on the wire.
type capturingMailer struct {
	verificationTokens []string
	resetTokens        []string
	loginLinkTokens    []string
	resolvedNumbers    []string
}

func (m *capturingMailer) SendVerificationEmail(to, token string) error {
	m.verificationTokens = append(m.verificationTokens, token)
	return nil
}

func (m *capturingMailer) SendPasswordResetEmail(to, token string) error {
	m.resetTokens = append(m.resetTokens, token)
	return nil
}

func (m *capturingMailer) SendLoginLinkEmail(to, token string) error {
	m.loginLinkTokens = append(m.loginLinkTokens, token)
	return nil
}

func (m *capturingMailer) SendTicketResolvedEmail(to, ticketNumber, resolution string) error {
	m.resolvedNumbers = append(m.resolvedNumbers, ticketNumber)
	return nil
}

// portalEnv wires the real use cases onto real repositories over an
// in-memory database, with only mail delivery stubbed out.
type portalEnv struct {
	mailer *capturingMailer

	register     *userusecases.RegisterUseCase
	verifyEmail  *userusecases.VerifyEmailUseCase
	login        *userusecases.LoginWithPasswordUseCase
	createTicket *ticketusecases.CreateTicketUseCase
	changeStatus *ticketusecases.ChangeStatusUseCase

	sessionRepo      *repository.SessionRepository
	ticketRepo       *repository.TicketRepository
	notificationRepo *repository.NotificationRepository
}

func newPortalEnv(t *testing.T) *portalEnv {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&models.UserModel{},
		&models.SessionModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.NotificationModel{},
		&models.ActivityLogModel{},
	))

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	activityRepo := repository.NewActivityLogRepository(gormDB)

	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	jwtService := auth.NewJWTService("portal-flow-test-secret", 15, 7)
	mailer := &capturingMailer{}

	authHelper := userhelpers.NewAuthHelper(userRepo, sessionRepo, activityRepo, log)
	ticketHelper := tickethelpers.NewTicketHelper(ticketRepo, notificationRepo, activityRepo, log)
	numberGen := ticket.NewNumberGenerator(ticketRepo)

	tokenConfig := config.TokenConfig{VerificationExpiresHours: 24, ResetExpiresMinutes: 60, LoginLinkExpiresMinutes: 15}
	sessionConfig := config.SessionConfig{IdleTimeoutMinutes: 30, DefaultExpDays: 7, RememberExpDays: 30}

	return &portalEnv{
		mailer:           mailer,
		register:         userusecases.NewRegisterUseCase(userRepo, hasher, mailer, authHelper, tokenConfig, log),
		verifyEmail:      userusecases.NewVerifyEmailUseCase(userRepo, authHelper, log),
		login:            userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, authHelper, sessionConfig, log),
		createTicket:     ticketusecases.NewCreateTicketUseCase(ticketRepo, numberGen, ticketHelper, log),
		changeStatus:     ticketusecases.NewChangeStatusUseCase(ticketRepo, userRepo, mailer, ticketHelper, log),
		sessionRepo:      sessionRepo,
		ticketRepo:       ticketRepo,
		notificationRepo: notificationRepo,
	}
}

// TestPortalFlow walks the full student journey: sign up, verify the
// address, log in, file a ticket, and have staff resolve it.
func TestPortalFlow_RegisterToResolution(t *testing.T) {
	env := newPortalEnv(t)
	ctx := context.Background()

	regResult, err := env.register.Execute(ctx, userusecases.RegisterCommand{
		Email:     "nina.varga@campus.example",
		FirstName: "Nina",
		LastName:  "Varga",
		Password:  "orange bicycle 7",
		Role:      "student",
		CampusID:  "U2026042",
	})
	require.NoError(t, err)
	assert.True(t, regResult.EmailSent)
	require.Len(t, env.mailer.verificationTokens, 1)

	userID := regResult.User.ID()
	require.NotZero(t, userID)

	t.Run("login before verification is rejected", func(t *testing.T) {
		_, err := env.login.Execute(ctx, userusecases.LoginWithPasswordCommand{
			Email:    "nina.varga@campus.example",
			Password: "orange bicycle 7",
		})
		assert.Error(t, err)
	})

	verificationToken := env.mailer.verificationTokens[0]
	require.NoError(t, env.verifyEmail.Execute(ctx, userusecases.VerifyEmailCommand{Token: verificationToken}))

	t.Run("verification token is single use", func(t *testing.T) {
		err := env.verifyEmail.Execute(ctx, userusecases.VerifyEmailCommand{Token: verificationToken})
		assert.Error(t, err)
	})

	loginResult, err := env.login.Execute(ctx, userusecases.LoginWithPasswordCommand{
		Email:     "nina.varga@campus.example",
		Password:  "orange bicycle 7",
		IPAddress: "10.1.2.3",
		UserAgent: "flow-test",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loginResult.AccessToken)
	assert.NotEmpty(t, loginResult.RefreshToken)

	session, err := env.sessionRepo.GetByID(loginResult.SessionID)
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	created, err := env.createTicket.Execute(ctx, ticketusecases.CreateTicketCommand{
		UserID:      userID,
		Subject:     "Wifi keeps dropping in building C",
		Description: "The dorm wifi disconnects every few minutes on the third floor of building C.",
		Category:    "network",
		Priority:    "high",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Ticket.Number(), "TKT-"))

	_, total, err := env.notificationRepo.ListByUserID(ctx, userID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	resolved, err := env.changeStatus.Execute(ctx, ticketusecases.ChangeStatusCommand{
		TicketID:   created.Ticket.ID(),
		ActorID:    99,
		ActorRole:  authorization.RoleStaff,
		Status:     "resolved",
		Resolution: "Replaced the flaky access point on the third floor.",
	})
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusResolved, resolved.Status())
	assert.NotNil(t, resolved.ResolvedAt())

	assert.Equal(t, []string{created.Ticket.Number()}, env.mailer.resolvedNumbers)

	_, total, err = env.notificationRepo.ListByUserID(ctx, userID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	stored, err := env.ticketRepo.GetByID(ctx, created.Ticket.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.Resolution())
	assert.Equal(t, "Replaced the flaky access point on the third floor.", *stored.Resolution())
}
