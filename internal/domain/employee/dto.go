package employee

import (
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID               string  `json:"id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Department       string  `json:"department"`
	Position         *string `json:"position,omitempty"`
	Role             string  `json:"role"`
	EmploymentStatus string  `json:"employment_status"`
	HireDate         string  `json:"hire_date"`
}

type EmployeeFilter struct {
	Department *string
	Role       *string
	Status     *string
	Search     *string
	Page       int
	Limit      int
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Role != nil && *f.Role != "" {
		valid := []string{string(RoleEmployee), string(RoleHR), string(RoleManager), string(RoleAdmin)}
		if !validator.IsInSlice(*f.Role, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of employee, hr, manager, admin",
			})
		}
	}
	if f.Status != nil && *f.Status != "" {
		valid := []string{
			string(EmploymentStatusActive),
			string(EmploymentStatusInactive),
			string(EmploymentStatusResigned),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of active, inactive, resigned",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
