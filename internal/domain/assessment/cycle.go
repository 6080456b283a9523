package assessment

import (
	"time"
)

// Cycle statuses
const (
	CycleStatusPlanned   = "planned"
	CycleStatusActive    = "active"
	CycleStatusCompleted = "completed"
	CycleStatusCancelled = "cancelled"
)

// Assessment types
const (
	TypeSelf    = "self"
	TypeManager = "manager"
	TypePeer    = "peer"
	Type360     = "360"
)

// AssessmentTypes lists every valid assessment type.
var AssessmentTypes = []string{TypeSelf, TypeManager, TypePeer, Type360}

// Cycle is a bounded time window grouping competency assessments.
//
// planned -> active -> completed
// planned -> cancelled, active -> cancelled
// Completed and cancelled are terminal.
type Cycle struct {
	ID              string
	Name            string
	Description     *string
	StartDate       time.Time
	EndDate         time.Time
	Status          string
	AssessmentTypes []string
	TargetEmployees []string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive is computed from Status. There is deliberately no persisted
// mirror flag to keep in sync.
func (c *Cycle) IsActive() bool {
	return c.Status == CycleStatusActive
}

// IsTerminal reports whether the cycle reached a final state.
func (c *Cycle) IsTerminal() bool {
	return c.Status == CycleStatusCompleted || c.Status == CycleStatusCancelled
}

// Start activates a planned cycle. Before the scheduled start date the
// transition requires adminOverride. Returns false from any other state.
func (c *Cycle) Start(now time.Time, adminOverride bool) bool {
	if c.Status != CycleStatusPlanned {
		return false
	}
	if now.Before(c.StartDate) && !adminOverride {
		return false
	}

	c.Status = CycleStatusActive
	return true
}

// Complete finishes a cycle that is active and inside its date window.
func (c *Cycle) Complete(now time.Time) bool {
	if c.Status != CycleStatusActive {
		return false
	}
	if now.Before(c.StartDate) || now.After(c.EndDate) {
		return false
	}

	c.Status = CycleStatusCompleted
	return true
}

// Cancel aborts a planned or active cycle.
func (c *Cycle) Cancel() bool {
	if c.Status != CycleStatusPlanned && c.Status != CycleStatusActive {
		return false
	}

	c.Status = CycleStatusCancelled
	return true
}

// IsOverdue reports whether an active cycle ran past its end date.
func (c *Cycle) IsOverdue(now time.Time) bool {
	return c.Status == CycleStatusActive && now.After(c.EndDate)
}

// DaysRemaining returns whole days until the end date, floored at zero.
// Terminal cycles always report zero.
func (c *Cycle) DaysRemaining(now time.Time) int {
	if c.IsTerminal() {
		return 0
	}

	remaining := int(c.EndDate.Sub(now).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CompletionPercentage returns submitted-or-beyond assessments over total,
// as a percentage. Zero when the cycle holds no assessments.
func CompletionPercentage(submitted, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(submitted) / float64(total) * 100
}
