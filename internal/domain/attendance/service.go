package attendance

import (
	"context"
)

// SessionService defines business logic for attendance operations.
// The acting employee is always resolved from the JWT claims in ctx.
type SessionService interface {
	// ClockIn opens today's session for the authenticated employee
	ClockIn(ctx context.Context) (ClockActionResponse, error)

	// ClockOut closes today's session
	ClockOut(ctx context.Context) (ClockActionResponse, error)

	// StartBreak opens a break on today's session
	StartBreak(ctx context.Context) (BreakActionResponse, error)

	// EndBreak closes the open break on today's session
	EndBreak(ctx context.Context) (BreakActionResponse, error)

	// GetMySessions retrieves sessions for the authenticated employee
	GetMySessions(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)

	// ListSessions retrieves sessions with filters (HR/manager)
	ListSessions(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)

	// GetSession retrieves a single session by ID
	GetSession(ctx context.Context, id string) (SessionResponse, error)

	// UpdateSession corrects a session (HR/manager), recording the editor
	UpdateSession(ctx context.Context, req UpdateSessionRequest) (SessionResponse, error)
}
