package employee

import (
	"time"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// StaffRoles are the roles excluded from attendance reminder sweeps.
var StaffRoles = []Role{RoleHR, RoleManager, RoleAdmin}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)

type Employee struct {
	ID               string
	UserID           *string
	FullName         string
	Email            string
	Department       string
	Position         *string
	Role             Role
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// IsActive reports whether the employee is currently employed.
func (e *Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive && e.DeletedAt == nil
}

// IsStaff reports whether the employee holds an HR, manager or admin role.
func (e *Employee) IsStaff() bool {
	for _, r := range StaffRoles {
		if e.Role == r {
			return true
		}
	}
	return false
}
