package employee

import (
	"context"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/employee"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		FullName:         emp.FullName,
		Email:            emp.Email,
		Department:       emp.Department,
		Position:         emp.Position,
		Role:             string(emp.Role),
		EmploymentStatus: string(emp.EmploymentStatus),
		HireDate:         emp.HireDate.Format("2006-01-02"),
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Employees:  responses,
	}, nil
}
