package reminder

import (
	"context"
)

// SweepResult summarizes one reminder sweep. Per-recipient failures are
// counted, never propagated: a bad mailbox must not abort the batch.
type SweepResult struct {
	Scanned int
	Sent    int
	Skipped int // deduplicated
	Failed  int
}

// Service runs the reminder sweeps. Each sweep is a read-only scan followed
// by per-recipient sends.
type Service interface {
	// SendMissingClockInReminders mails employees with no session today
	SendMissingClockInReminders(ctx context.Context) (SweepResult, error)

	// SendBreakOverLimitReminders mails employees whose open break is over
	// its limit
	SendBreakOverLimitReminders(ctx context.Context) (SweepResult, error)

	// SendAssessmentDeadlineReminders mails assessors with drafts due
	// within the horizon or already overdue
	SendAssessmentDeadlineReminders(ctx context.Context) (SweepResult, error)
}
