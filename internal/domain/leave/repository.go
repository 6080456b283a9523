package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// UpdateTransition persists an approve/reject/cancel outcome with a
	// conditional update (WHERE status = 'waiting_approval'). Returns
	// ErrLeaveRequestAlreadyProcessed on a zero row count.
	UpdateTransition(ctx context.Context, req LeaveRequest) error
}
