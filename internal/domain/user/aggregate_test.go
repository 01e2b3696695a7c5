package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/shared/authorization"
	vo "campusdesk/internal/domain/user/valueobjects"
)

func newTestEmail(t *testing.T, value string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(value)
	require.NoError(t, err)
	return email
}

func newTestName(t *testing.T, first, last string) *vo.Name {
	t.Helper()
	name, err := vo.NewName(first, last)
	require.NoError(t, err)
	return name
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser(
		newTestEmail(t, "jordan@campus.edu"),
		newTestName(t, "Jordan", "Reyes"),
		authorization.RoleStudent,
		nil,
	)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	email := newTestEmail(t, "jordan@campus.edu")
	name := newTestName(t, "Jordan", "Reyes")
	campusID := "S2024-0042"

	tests := []struct {
		name      string
		email     *vo.Email
		userName  *vo.Name
		role      authorization.UserRole
		campusID  *string
		wantError bool
	}{
		{
			name:     "valid student",
			email:    email,
			userName: name,
			role:     authorization.RoleStudent,
			campusID: &campusID,
		},
		{
			name:     "valid staff without campus ID",
			email:    email,
			userName: name,
			role:     authorization.RoleStaff,
		},
		{
			name:      "nil email",
			userName:  name,
			role:      authorization.RoleStudent,
			wantError: true,
		},
		{
			name:      "nil name",
			email:     email,
			role:      authorization.RoleStudent,
			wantError: true,
		},
		{
			name:      "invalid role",
			email:     email,
			userName:  name,
			role:      authorization.UserRole("superuser"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.email, tt.userName, tt.role, tt.campusID)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, u)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(0), u.ID())
			assert.Equal(t, tt.role, u.Role())
			assert.False(t, u.IsEmailVerified())
			assert.Equal(t, 1, u.Version())
		})
	}
}

func TestUser_SetID(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.SetID(42))
	assert.Equal(t, uint(42), u.ID())

	assert.Error(t, u.SetID(43), "ID must be immutable once set")
}

func TestUser_UpdateName(t *testing.T) {
	u := newTestUser(t)
	originalVersion := u.Version()

	newName := newTestName(t, "Jordan", "Smith")
	require.NoError(t, u.UpdateName(newName))
	assert.Equal(t, "Jordan Smith", u.Name().DisplayName())
	assert.Equal(t, originalVersion+1, u.Version())

	// Setting the same name is a no-op.
	require.NoError(t, u.UpdateName(newName))
	assert.Equal(t, originalVersion+1, u.Version())

	assert.Error(t, u.UpdateName(nil))
}

func TestUser_ChangeRole(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.ChangeRole(authorization.RoleStaff))
	assert.Equal(t, authorization.RoleStaff, u.Role())

	assert.Error(t, u.ChangeRole(authorization.UserRole("root")))
}

func TestUser_MarkVerified(t *testing.T) {
	u := newTestUser(t)
	_, err := u.GenerateEmailVerificationToken(24 * time.Hour)
	require.NoError(t, err)

	u.MarkVerified()

	assert.True(t, u.IsEmailVerified())
	authData := u.GetAuthData()
	assert.Nil(t, authData.EmailVerificationToken)
	assert.Nil(t, authData.EmailVerificationExpiresAt)
}

func TestUser_MarkUnverified(t *testing.T) {
	u := newTestUser(t)
	u.MarkVerified()
	require.True(t, u.IsEmailVerified())

	u.MarkUnverified()
	assert.False(t, u.IsEmailVerified())
}

func TestUser_CanBeDeletedBy(t *testing.T) {
	student := newTestUser(t)
	assert.True(t, student.CanBeDeletedBy(authorization.RoleAdmin))
	assert.False(t, student.CanBeDeletedBy(authorization.RoleStaff))

	admin, err := NewUser(
		newTestEmail(t, "admin@campus.edu"),
		newTestName(t, "Alex", "Ng"),
		authorization.RoleAdmin,
		nil,
	)
	require.NoError(t, err)
	assert.False(t, admin.CanBeDeletedBy(authorization.RoleAdmin), "admin accounts are never deletable")
}

func TestUser_RecordLogin(t *testing.T) {
	u := newTestUser(t)
	assert.Nil(t, u.LastLoginAt())

	u.RecordLogin()
	require.NotNil(t, u.LastLoginAt())
	assert.WithinDuration(t, time.Now(), *u.LastLoginAt(), time.Second)
}

func TestReconstructUser(t *testing.T) {
	email := newTestEmail(t, "jordan@campus.edu")
	name := newTestName(t, "Jordan", "Reyes")
	now := time.Now()
	hash := "$2a$10$fakehash"

	u, err := ReconstructUser(7, email, name, authorization.RoleFaculty, nil, 3, now, now, &AuthData{
		PasswordHash:  &hash,
		EmailVerified: true,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), u.ID())
	assert.Equal(t, 3, u.Version())
	assert.True(t, u.IsEmailVerified())
	assert.True(t, u.HasPassword())

	_, err = ReconstructUser(0, email, name, authorization.RoleFaculty, nil, 1, now, now, nil)
	assert.Error(t, err, "zero ID must be rejected")
}

func TestUser_GetDisplayInfo(t *testing.T) {
	u := newTestUser(t)
	require.NoError(t, u.SetID(9))

	info := u.GetDisplayInfo()
	assert.Equal(t, uint(9), info.ID)
	assert.Equal(t, "jordan@campus.edu", info.Email)
	assert.Equal(t, "Jordan Reyes", info.Name)
	assert.Equal(t, "JR", info.Initials)
	assert.Equal(t, "student", info.Role)
	assert.False(t, info.Verified)
}
