package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access for employee records.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListActiveWithoutSession returns active employees with the employee
	// role (staff roles excluded) that have no attendance session for the
	// given work date. Feeds the missing clock-in report and reminder sweep.
	ListActiveWithoutSession(ctx context.Context, workDate time.Time) ([]Employee, error)
}
