package leave

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusWaitingApproval RequestStatus = "waiting_approval"
	RequestStatusApproved        RequestStatus = "approved"
	RequestStatusRejected        RequestStatus = "rejected"
	RequestStatusCancelled       RequestStatus = "cancelled"
)

// LeaveRequest entity
//
// waiting_approval -> approved | rejected, waiting_approval -> cancelled
// (by the requester). All outcomes are terminal.
type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveTypeName   string
	StartDate       time.Time
	EndDate         time.Time
	Reason          *string
	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for list views
	EmployeeName *string
}

// TotalDays returns the inclusive calendar length of the request.
func (r *LeaveRequest) TotalDays() int {
	days := int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// Approve resolves a pending request. No-op from any other state.
func (r *LeaveRequest) Approve(now time.Time, approverID string) bool {
	if r.Status != RequestStatusWaitingApproval {
		return false
	}

	at := now
	r.Status = RequestStatusApproved
	r.ApprovedAt = &at
	r.ApprovedBy = &approverID
	return true
}

// Reject resolves a pending request with a reason.
func (r *LeaveRequest) Reject(now time.Time, approverID, reason string) bool {
	if r.Status != RequestStatusWaitingApproval {
		return false
	}

	at := now
	r.Status = RequestStatusRejected
	r.ApprovedAt = &at
	r.ApprovedBy = &approverID
	r.RejectionReason = &reason
	return true
}

// Cancel withdraws a pending request.
func (r *LeaveRequest) Cancel() bool {
	if r.Status != RequestStatusWaitingApproval {
		return false
	}

	r.Status = RequestStatusCancelled
	return true
}
