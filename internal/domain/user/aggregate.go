package user

import (
	"fmt"
	"time"

	"campusdesk/internal/shared/authorization"
	vo "campusdesk/internal/domain/user/valueobjects"
)

// User is the account aggregate root. Persistence concerns live in the
// infrastructure layer; this type only enforces account invariants.
type User struct {
	id       uint
	email    *vo.Email
	name     *vo.Name
	role     authorization.UserRole
	campusID *string

	passwordHash               *string
	emailVerified              bool
	emailVerificationToken     *string
	emailVerificationExpiresAt *time.Time
	passwordResetToken         *string
	passwordResetExpiresAt     *time.Time
	loginLinkToken             *string
	loginLinkExpiresAt         *time.Time

	failedLoginAttempts int
	lockedUntil         *time.Time
	lastLoginAt         *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates an unverified account.
func NewUser(email *vo.Email, name *vo.Name, role authorization.UserRole, campusID *string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		email:     email,
		name:      name,
		role:      role,
		campusID:  campusID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// AuthData carries the credential columns between aggregate and persistence.
type AuthData struct {
	PasswordHash               *string
	EmailVerified              bool
	EmailVerificationToken     *string
	EmailVerificationExpiresAt *time.Time
	PasswordResetToken         *string
	PasswordResetExpiresAt     *time.Time
	LoginLinkToken             *string
	LoginLinkExpiresAt         *time.Time
	FailedLoginAttempts        int
	LockedUntil                *time.Time
	LastLoginAt                *time.Time
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	email *vo.Email,
	name *vo.Name,
	role authorization.UserRole,
	campusID *string,
	version int,
	createdAt, updatedAt time.Time,
	authData *AuthData,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	u := &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		campusID:  campusID,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if authData != nil {
		u.passwordHash = authData.PasswordHash
		u.emailVerified = authData.EmailVerified
		u.emailVerificationToken = authData.EmailVerificationToken
		u.emailVerificationExpiresAt = authData.EmailVerificationExpiresAt
		u.passwordResetToken = authData.PasswordResetToken
		u.passwordResetExpiresAt = authData.PasswordResetExpiresAt
		u.loginLinkToken = authData.LoginLinkToken
		u.loginLinkExpiresAt = authData.LoginLinkExpiresAt
		u.failedLoginAttempts = authData.FailedLoginAttempts
		u.lockedUntil = authData.LockedUntil
		u.lastLoginAt = authData.LastLoginAt
	}

	return u, nil
}

func (u *User) GetAuthData() *AuthData {
	return &AuthData{
		PasswordHash:               u.passwordHash,
		EmailVerified:              u.emailVerified,
		EmailVerificationToken:     u.emailVerificationToken,
		EmailVerificationExpiresAt: u.emailVerificationExpiresAt,
		PasswordResetToken:         u.passwordResetToken,
		PasswordResetExpiresAt:     u.passwordResetExpiresAt,
		LoginLinkToken:             u.loginLinkToken,
		LoginLinkExpiresAt:         u.loginLinkExpiresAt,
		FailedLoginAttempts:        u.failedLoginAttempts,
		LockedUntil:                u.lockedUntil,
		LastLoginAt:                u.lastLoginAt,
	}
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() *vo.Name {
	return u.name
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CampusID() *string {
	return u.campusID
}

func (u *User) Version() int {
	return u.version
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateName(newName *vo.Name) error {
	if newName == nil {
		return fmt.Errorf("name cannot be nil")
	}

	if u.name.Equals(newName) {
		return nil
	}

	u.name = newName
	u.updatedAt = time.Now()
	u.version++
	return nil
}

func (u *User) ChangeRole(newRole authorization.UserRole) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}

	if u.role == newRole {
		return nil
	}

	u.role = newRole
	u.updatedAt = time.Now()
	u.version++
	return nil
}

// MarkVerified flips the account to verified without a token. Used by the
// admin back-office; the self-service path goes through VerifyEmail.
func (u *User) MarkVerified() {
	if u.emailVerified {
		return
	}
	u.emailVerified = true
	u.emailVerificationToken = nil
	u.emailVerificationExpiresAt = nil
	u.updatedAt = time.Now()
	u.version++
}

// MarkUnverified revokes verification, forcing the user back through the
// email verification flow before the next login.
func (u *User) MarkUnverified() {
	if !u.emailVerified {
		return
	}
	u.emailVerified = false
	u.updatedAt = time.Now()
	u.version++
}

func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// CanBeDeletedBy reports whether the actor may delete this account.
// Admin accounts are never deletable, even by other admins.
func (u *User) CanBeDeletedBy(actorRole authorization.UserRole) bool {
	if u.role.IsAdmin() {
		return false
	}
	return actorRole.IsAdmin()
}

// DisplayInfo is the principal shape carried in sessions and responses.
type DisplayInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

func (u *User) GetDisplayInfo() DisplayInfo {
	return DisplayInfo{
		ID:       u.id,
		Email:    u.email.String(),
		Name:     u.name.DisplayName(),
		Initials: u.name.Initials(),
		Role:     u.role.String(),
		Verified: u.emailVerified,
	}
}

func (u *User) Validate() error {
	if u.email == nil {
		return fmt.Errorf("email is required")
	}
	if u.name == nil {
		return fmt.Errorf("name is required")
	}
	if !u.role.IsValid() {
		return fmt.Errorf("invalid role: %s", u.role)
	}
	return nil
}
