package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/leave"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_name, lr.start_date, lr.end_date,
	lr.reason, lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.created_at, lr.updated_at`

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type_name, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveTypeName,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveRequestColumns + `,
			   e.full_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeName, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+leaveRequestColumns+`,
			   e.full_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE %s
		ORDER BY lr.created_at DESC
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
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeName, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

// UpdateTransition implements leave.LeaveRequestRepository. The WHERE status
// guard keeps approve/reject/cancel races from overwriting a resolved row.
func (r *leaveRequestRepository) UpdateTransition(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
			approved_by = $3,
			approved_at = $4,
			rejection_reason = $5,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'waiting_approval'
	`

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.Status,
		req.ApprovedBy,
		req.ApprovedAt,
		req.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request transition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}
