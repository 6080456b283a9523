package assessment

import (
	"context"
	"time"
)

// CycleRepository defines data access for assessment cycles.
type CycleRepository interface {
	Create(ctx context.Context, cycle Cycle) (Cycle, error)
	GetByID(ctx context.Context, id string) (Cycle, error)
	List(ctx context.Context) ([]Cycle, error)

	// UpdateStatus transitions a cycle with a conditional update
	// (WHERE status = fromStatus). Returns ErrCycleAlreadyProcessed when
	// the row was not in the expected state, so concurrent transitions
	// cannot clobber each other.
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error
}

// AssessmentRepository defines data access for competency assessments.
type AssessmentRepository interface {
	Create(ctx context.Context, a Assessment) (Assessment, error)
	GetByID(ctx context.Context, id string) (Assessment, error)
	List(ctx context.Context, filter AssessmentFilter) ([]Assessment, int64, error)

	// UpdateTransition persists the outcome of a status transition with a
	// conditional update (WHERE status = fromStatus). Returns
	// ErrAssessmentAlreadyProcessed on a zero row count.
	UpdateTransition(ctx context.Context, a Assessment, fromStatus string) error

	// UpdateDeadline sets the extended deadline while the row is a draft
	UpdateDeadline(ctx context.Context, id string, deadline time.Time) error

	// UpdateAssessor reassigns the assessor (any non-terminal state)
	UpdateAssessor(ctx context.Context, id, assessorID string) error

	// CountByStatus returns per-status counts for a cycle
	CountByStatus(ctx context.Context, cycleID string) (map[string]int, error)

	// CountOverdueDrafts counts drafts in the cycle whose effective
	// deadline (extension or cycle end) lies before now
	CountOverdueDrafts(ctx context.Context, cycleID string, now time.Time) (int, error)

	// AverageSubmittedRating averages ratings over submitted, approved and
	// rejected assessments in the cycle; ok is false when none exist
	AverageSubmittedRating(ctx context.Context, cycleID string) (avg float64, ok bool, err error)

	// ListDueDrafts returns drafts across active cycles whose effective
	// deadline falls before the horizon, joined with assessor contact data
	ListDueDrafts(ctx context.Context, horizon time.Time) ([]Assessment, error)
}

// CompetencyRepository defines data access for competencies.
type CompetencyRepository interface {
	GetByID(ctx context.Context, id string) (Competency, error)
	List(ctx context.Context) ([]Competency, error)
}
