package mappers

import (
	"fmt"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/authorization"
)

// UserMapper converts between the user aggregate and its persistence model.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	authData := u.GetAuthData()

	return &models.UserModel{
		ID:                         u.ID(),
		Email:                      u.Email().String(),
		FirstName:                  u.Name().First(),
		LastName:                   u.Name().Last(),
		Role:                       u.Role().String(),
		CampusID:                   u.CampusID(),
		PasswordHash:               authData.PasswordHash,
		EmailVerified:              authData.EmailVerified,
		EmailVerificationToken:     authData.EmailVerificationToken,
		EmailVerificationExpiresAt: authData.EmailVerificationExpiresAt,
		PasswordResetToken:         authData.PasswordResetToken,
		PasswordResetExpiresAt:     authData.PasswordResetExpiresAt,
		LoginLinkToken:             authData.LoginLinkToken,
		LoginLinkExpiresAt:         authData.LoginLinkExpiresAt,
		FailedLoginAttempts:        authData.FailedLoginAttempts,
		LockedUntil:                authData.LockedUntil,
		LastLoginAt:                authData.LastLoginAt,
		Version:                    u.Version(),
		CreatedAt:                  u.CreatedAt(),
		UpdatedAt:                  u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email for user %d: %w", model.ID, err)
	}

	name, err := vo.NewName(model.FirstName, model.LastName)
	if err != nil {
		return nil, fmt.Errorf("invalid name for user %d: %w", model.ID, err)
	}

	role := authorization.ParseUserRole(model.Role)

	authData := &user.AuthData{
		PasswordHash:               model.PasswordHash,
		EmailVerified:              model.EmailVerified,
		EmailVerificationToken:     model.EmailVerificationToken,
		EmailVerificationExpiresAt: model.EmailVerificationExpiresAt,
		PasswordResetToken:         model.PasswordResetToken,
		PasswordResetExpiresAt:     model.PasswordResetExpiresAt,
		LoginLinkToken:             model.LoginLinkToken,
		LoginLinkExpiresAt:         model.LoginLinkExpiresAt,
		FailedLoginAttempts:        model.FailedLoginAttempts,
		LockedUntil:                model.LockedUntil,
		LastLoginAt:                model.LastLoginAt,
	}

	return user.ReconstructUser(
		model.ID,
		email,
		name,
		role,
		model.CampusID,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
		authData,
	)
}
