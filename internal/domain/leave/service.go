package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	// CreateRequest files a leave request for the authenticated employee
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)

	// ApproveRequest resolves a pending request (HR/manager)
	ApproveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	// RejectRequest resolves a pending request with a reason (HR/manager)
	RejectRequest(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)

	// ListRequests lists requests with filters
	ListRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)
}
