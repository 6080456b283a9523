package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access methods for attendance sessions.
type SessionRepository interface {
	// Create inserts a new session. The (employee_id, work_date) unique
	// constraint makes concurrent double clock-in an ErrAlreadyClockedIn
	// rather than a duplicate row.
	Create(ctx context.Context, session Session) (Session, error)

	// GetByID retrieves a session by ID
	GetByID(ctx context.Context, id string) (Session, error)

	// GetByEmployeeAndDate retrieves the session for an employee on a work
	// date, or nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*Session, error)

	// Update writes the full mutable state of a session
	Update(ctx context.Context, session Session) error

	// GetMySessions retrieves sessions for one employee with filters
	GetMySessions(ctx context.Context, employeeID string, filter SessionFilter) ([]Session, int64, error)

	// List retrieves sessions across employees with filters (manager view)
	List(ctx context.Context, filter SessionFilter) ([]Session, int64, error)

	// ListOpenBreaks retrieves sessions with an open break on a work date,
	// joined with employee name and department for reporting
	ListOpenBreaks(ctx context.Context, workDate time.Time) ([]Session, error)
}
