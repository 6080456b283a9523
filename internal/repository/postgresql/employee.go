package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/employee"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.full_name, e.email, e.department, e.position,
	e.role, e.employment_status, e.hire_date,
	e.created_at, e.updated_at, e.deleted_at`

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `
		FROM employees e
		WHERE e.id = $1
		  AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.UserID, &emp.FullName, &emp.Email, &emp.Department, &emp.Position,
		&emp.Role, &emp.EmploymentStatus, &emp.HireDate,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "e.deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.Department != nil && *filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Role != nil && *filter.Role != "" {
		baseWhere += fmt.Sprintf(" AND e.role = $%d", argIdx)
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND e.employment_status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+employeeColumns+`
		FROM employees e
		WHERE %s
		ORDER BY e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.FullName, &emp.Email, &emp.Department, &emp.Position,
			&emp.Role, &emp.EmploymentStatus, &emp.HireDate,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, nil
}

// ListActiveWithoutSession implements employee.EmployeeRepository. Staff
// roles are excluded: HR, managers and admins are not swept.
func (r *employeeRepository) ListActiveWithoutSession(ctx context.Context, workDate time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `
		FROM employees e
		WHERE e.deleted_at IS NULL
		  AND e.employment_status = 'active'
		  AND e.role = 'employee'
		  AND NOT EXISTS (
			SELECT 1
			FROM attendance_sessions s
			WHERE s.employee_id = e.id
			  AND s.work_date = $1
		  )
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees without session: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.FullName, &emp.Email, &emp.Department, &emp.Position,
			&emp.Role, &emp.EmploymentStatus, &emp.HireDate,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}
