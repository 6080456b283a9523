package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, cycle administration
	RoleHR       Role = "hr"       // Reports, approvals, employee management
	RoleManager  Role = "manager"  // Can approve leave and assessments
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	EmployeeID      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanApprove checks if the user can approve assessments and leave requests
func (u *User) CanApprove() bool {
	return u.Role == RoleManager || u.Role == RoleHR || u.Role == RoleAdmin
}

// CanAdministerCycles checks if the user can create and drive cycles
func (u *User) CanAdministerCycles() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}
