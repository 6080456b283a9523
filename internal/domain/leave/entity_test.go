package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequest() *LeaveRequest {
	return &LeaveRequest{
		ID:            "req-1",
		EmployeeID:    "emp-1",
		LeaveTypeName: "Annual Leave",
		StartDate:     time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		Status:        RequestStatusWaitingApproval,
	}
}

func TestTotalDaysInclusive(t *testing.T) {
	r := pendingRequest()
	assert.Equal(t, 3, r.TotalDays())
}

func TestTotalDaysSingleDay(t *testing.T) {
	r := pendingRequest()
	r.EndDate = r.StartDate
	assert.Equal(t, 1, r.TotalDays())
}

func TestTotalDaysClampsInvertedRange(t *testing.T) {
	r := pendingRequest()
	r.StartDate, r.EndDate = r.EndDate.AddDate(0, 0, 5), r.StartDate
	assert.Equal(t, 0, r.TotalDays())
}

func TestApproveFromPending(t *testing.T) {
	r := pendingRequest()
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	require.True(t, r.Approve(now, "mgr-1"))
	assert.Equal(t, RequestStatusApproved, r.Status)
	assert.Equal(t, "mgr-1", *r.ApprovedBy)
	assert.Equal(t, now, *r.ApprovedAt)
}

func TestApproveIsNoOpWhenAlreadyResolved(t *testing.T) {
	r := pendingRequest()
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	require.True(t, r.Reject(now, "mgr-1", "headcount freeze"))
	assert.False(t, r.Approve(now.Add(time.Minute), "mgr-2"))
	assert.Equal(t, RequestStatusRejected, r.Status)
	assert.Equal(t, "mgr-1", *r.ApprovedBy)
}

func TestRejectRecordsReason(t *testing.T) {
	r := pendingRequest()

	require.True(t, r.Reject(time.Now(), "hr-1", "overlapping request"))
	assert.Equal(t, "overlapping request", *r.RejectionReason)
}

func TestCancelOnlyFromPending(t *testing.T) {
	r := pendingRequest()
	require.True(t, r.Cancel())
	assert.Equal(t, RequestStatusCancelled, r.Status)

	// Terminal: a second cancel and a late approve both fail
	assert.False(t, r.Cancel())
	assert.False(t, r.Approve(time.Now(), "mgr-1"))
}
