package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type attendanceSessionRepository struct {
	db *database.DB
}

func NewAttendanceSessionRepository(db *database.DB) attendance.SessionRepository {
	return &attendanceSessionRepository{db: db}
}

const sessionColumns = `
	s.id, s.employee_id, s.work_date,
	s.clock_in, s.clock_out,
	s.on_break, s.current_break_start, s.break_sessions, s.total_break_minutes,
	s.status, s.edited_by,
	s.created_at, s.updated_at`

func scanSession(row pgx.Row, sess *attendance.Session) error {
	return row.Scan(
		&sess.ID, &sess.EmployeeID, &sess.WorkDate,
		&sess.ClockIn, &sess.ClockOut,
		&sess.OnBreak, &sess.CurrentBreakStart, &sess.BreakSessions, &sess.TotalBreakMinutes,
		&sess.Status, &sess.EditedBy,
		&sess.CreatedAt, &sess.UpdatedAt,
	)
}

// Create implements attendance.SessionRepository. The unique index on
// (employee_id, work_date) turns a concurrent double clock-in into
// ErrAlreadyClockedIn instead of a second row.
func (a *attendanceSessionRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_sessions (
			employee_id, work_date, clock_in, clock_out,
			on_break, current_break_start, break_sessions, total_break_minutes,
			status, edited_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.EmployeeID,
		session.WorkDate,
		session.ClockIn,
		session.ClockOut,
		session.OnBreak,
		session.CurrentBreakStart,
		session.BreakSessions,
		session.TotalBreakMinutes,
		session.Status,
		session.EditedBy,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Session{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Session{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return session, nil
}

// GetByID implements attendance.SessionRepository.
func (a *attendanceSessionRepository) GetByID(ctx context.Context, id string) (attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT` + sessionColumns + `,
			   e.full_name AS employee_name,
			   e.department AS department
		FROM attendance_sessions s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	var sess attendance.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&sess.ID, &sess.EmployeeID, &sess.WorkDate,
		&sess.ClockIn, &sess.ClockOut,
		&sess.OnBreak, &sess.CurrentBreakStart, &sess.BreakSessions, &sess.TotalBreakMinutes,
		&sess.Status, &sess.EditedBy,
		&sess.CreatedAt, &sess.UpdatedAt,
		&sess.EmployeeName, &sess.Department,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, fmt.Errorf("failed to get attendance session by ID: %w", err)
	}

	return sess, nil
}

// GetByEmployeeAndDate implements attendance.SessionRepository.
func (a *attendanceSessionRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT` + sessionColumns + `
		FROM attendance_sessions s
		WHERE s.employee_id = $1
		  AND s.work_date = $2
		LIMIT 1
	`

	var sess attendance.Session
	err := scanSession(q.QueryRow(ctx, query, employeeID, workDate), &sess)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No session for this work day yet
		}
		return nil, fmt.Errorf("failed to get attendance session by employee and date: %w", err)
	}

	return &sess, nil
}

// Update implements attendance.SessionRepository.
func (a *attendanceSessionRepository) Update(ctx context.Context, session attendance.Session) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_sessions
		SET clock_in = $2,
			clock_out = $3,
			on_break = $4,
			current_break_start = $5,
			break_sessions = $6,
			total_break_minutes = $7,
			status = $8,
			edited_by = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		session.ID,
		session.ClockIn,
		session.ClockOut,
		session.OnBreak,
		session.CurrentBreakStart,
		session.BreakSessions,
		session.TotalBreakMinutes,
		session.Status,
		session.EditedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}

	return nil
}

// GetMySessions implements attendance.SessionRepository.
func (a *attendanceSessionRepository) GetMySessions(ctx context.Context, employeeID string, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	baseWhere := "s.employee_id = $1"
	args := []interface{}{employeeID}
	return a.listWithWhere(ctx, baseWhere, args, filter, false)
}

// List implements attendance.SessionRepository.
func (a *attendanceSessionRepository) List(ctx context.Context, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	baseWhere := "1=1"
	args := []interface{}{}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND s.employee_id = $%d", len(args)+1)
		args = append(args, *filter.EmployeeID)
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		baseWhere += fmt.Sprintf(" AND e.full_name ILIKE $%d", len(args)+1)
		args = append(args, "%"+*filter.EmployeeName+"%")
	}

	return a.listWithWhere(ctx, baseWhere, args, filter, true)
}

func (a *attendanceSessionRepository) listWithWhere(ctx context.Context, baseWhere string, args []interface{}, filter attendance.SessionFilter, withEmployee bool) ([]attendance.Session, int64, error) {
	q := GetQuerier(ctx, a.db)

	argIdx := len(args) + 1

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND s.work_date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND s.work_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND s.work_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND s.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_sessions s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance sessions: %w", err)
	}

	orderByField := "s.work_date"
	switch filter.SortBy {
	case "clock_in_time":
		orderByField = "s.clock_in"
	case "clock_out_time":
		orderByField = "s.clock_out"
	case "status":
		orderByField = "s.status"
	case "employee_name":
		orderByField = "e.full_name"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+sessionColumns+`,
			   e.full_name AS employee_name,
			   e.department AS department
		FROM attendance_sessions s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var sess attendance.Session
		err := rows.Scan(
			&sess.ID, &sess.EmployeeID, &sess.WorkDate,
			&sess.ClockIn, &sess.ClockOut,
			&sess.OnBreak, &sess.CurrentBreakStart, &sess.BreakSessions, &sess.TotalBreakMinutes,
			&sess.Status, &sess.EditedBy,
			&sess.CreatedAt, &sess.UpdatedAt,
			&sess.EmployeeName, &sess.Department,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance session: %w", err)
		}
		sessions = append(sessions, sess)
	}

	return sessions, total, nil
}

// ListOpenBreaks implements attendance.SessionRepository.
func (a *attendanceSessionRepository) ListOpenBreaks(ctx context.Context, workDate time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT` + sessionColumns + `,
			   e.full_name AS employee_name,
			   e.department AS department
		FROM attendance_sessions s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.work_date = $1
		  AND s.on_break = TRUE
		  AND s.current_break_start IS NOT NULL
		ORDER BY s.current_break_start ASC
	`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query open breaks: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var sess attendance.Session
		err := rows.Scan(
			&sess.ID, &sess.EmployeeID, &sess.WorkDate,
			&sess.ClockIn, &sess.ClockOut,
			&sess.OnBreak, &sess.CurrentBreakStart, &sess.BreakSessions, &sess.TotalBreakMinutes,
			&sess.Status, &sess.EditedBy,
			&sess.CreatedAt, &sess.UpdatedAt,
			&sess.EmployeeName, &sess.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan open break session: %w", err)
		}
		sessions = append(sessions, sess)
	}

	return sessions, nil
}
