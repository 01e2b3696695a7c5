package authorization

// UserRole is the campus role attached to every account.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleStaff   UserRole = "staff"
	RoleFaculty UserRole = "faculty"
	RoleAdmin   UserRole = "admin"
)

var validRoles = map[UserRole]bool{
	RoleStudent: true,
	RoleStaff:   true,
	RoleFaculty: true,
	RoleAdmin:   true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// CanBeAssignee reports whether tickets may be assigned to this role.
// Only IT staff and admins work the queue.
func (r UserRole) CanBeAssignee() bool {
	return r == RoleStaff || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleStudent
}
