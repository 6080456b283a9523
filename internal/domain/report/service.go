package report

import (
	"context"
)

// ReportService defines the read-only bulk scans consumed by handlers and
// by the reminder sweeps. Scans are stateless and safe to re-run.
type ReportService interface {
	// MissingClockIns lists active regular employees with no session for
	// the date (today in the company timezone when unset)
	MissingClockIns(ctx context.Context, req MissingClockInRequest) (MissingClockInReport, error)

	// BreakViolations lists open breaks currently over their
	// per-break-number limit
	BreakViolations(ctx context.Context) (BreakViolationReport, error)
}
