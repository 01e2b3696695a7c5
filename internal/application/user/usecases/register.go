package usecases

import (
	"context"
	"fmt"
	"time"

	"campusdesk/internal/application/user/helpers"
	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/config"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
	CampusID  string
	IPAddress string
	UserAgent string
}

type RegisterResult struct {
	User *user.User
	// EmailSent is false when the account was created but the
	// verification mail could not be delivered.
	EmailSent bool
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	emailService   EmailService
	authHelper     *helpers.AuthHelper
	tokenConfig    config.TokenConfig
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	emailService EmailService,
	authHelper *helpers.AuthHelper,
	tokenConfig config.TokenConfig,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		emailService:   emailService,
		authHelper:     authHelper,
		tokenConfig:    tokenConfig,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid email: %v", err))
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, apperrors.NewInternalError("failed to check email availability")
	}
	if exists {
		return nil, apperrors.NewConflictError(user.ErrEmailTaken.Error())
	}

	var campusID *string
	if cmd.CampusID != "" {
		taken, err := uc.userRepo.ExistsByCampusID(ctx, cmd.CampusID)
		if err != nil {
			uc.logger.Errorw("failed to check campus ID existence", "error", err)
			return nil, apperrors.NewInternalError("failed to check campus ID availability")
		}
		if taken {
			return nil, apperrors.NewConflictError(user.ErrCampusIDTaken.Error())
		}
		campusID = &cmd.CampusID
	}

	name, err := vo.NewName(cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid name: %v", err))
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid password: %v", err))
	}

	// Self-service signup never yields an admin account.
	role := authorization.ParseUserRole(cmd.Role)
	if role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("cannot self-register as admin")
	}

	newUser, err := user.NewUser(email, name, role, campusID)
	if err != nil {
		uc.logger.Errorw("failed to create user aggregate", "error", err)
		return nil, apperrors.NewInternalError("failed to create user")
	}

	if err := newUser.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, apperrors.NewInternalError("failed to set password")
	}

	verificationTTL := time.Duration(uc.tokenConfig.VerificationExpiresHours) * time.Hour
	token, err := newUser.GenerateEmailVerificationToken(verificationTTL)
	if err != nil {
		uc.logger.Errorw("failed to generate verification token", "error", err)
		return nil, apperrors.NewInternalError("failed to generate verification token")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user in database", "error", err)
		return nil, apperrors.NewInternalError("failed to create user")
	}

	uc.authHelper.RecordActivity(ctx, newUser.ID(), activity.ActionRegister, "account registered", helpers.ClientInfo{
		IPAddress: cmd.IPAddress,
		UserAgent: cmd.UserAgent,
	})

	// Mail failure degrades to success: the account exists and the user
	// can request a fresh verification mail later.
	emailSent := true
	if err := uc.emailService.SendVerificationEmail(email.String(), token.Value()); err != nil {
		uc.logger.Warnw("failed to send verification email", "error", err, "email", email.String())
		emailSent = false
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email.String(), "email_sent", emailSent)

	return &RegisterResult{User: newUser, EmailSent: emailSent}, nil
}
