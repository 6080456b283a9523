package employee

import (
	"context"
)

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
}
