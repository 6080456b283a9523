package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCycle(status string) *Cycle {
	return &Cycle{
		ID:        "cycle-1",
		Name:      "Q1 Review",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestCycleStartFromPlanned(t *testing.T) {
	c := testCycle(CycleStatusPlanned)
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	require.True(t, c.Start(now, false))
	assert.Equal(t, CycleStatusActive, c.Status)
	assert.True(t, c.IsActive())
}

func TestCycleStartBeforeStartDateNeedsOverride(t *testing.T) {
	early := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	c := testCycle(CycleStatusPlanned)
	assert.False(t, c.Start(early, false))
	assert.Equal(t, CycleStatusPlanned, c.Status)

	assert.True(t, c.Start(early, true))
	assert.Equal(t, CycleStatusActive, c.Status)
}

func TestCycleStartFromTerminalFails(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, status := range []string{CycleStatusCompleted, CycleStatusCancelled} {
		c := testCycle(status)
		assert.False(t, c.Start(now, false), status)
		assert.False(t, c.Start(now, true), status)
		assert.Equal(t, status, c.Status)
	}
}

func TestCycleCompleteOnlyWhileActiveAndInWindow(t *testing.T) {
	inWindow := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	pastWindow := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	c := testCycle(CycleStatusActive)
	require.True(t, c.Complete(inWindow))
	assert.Equal(t, CycleStatusCompleted, c.Status)

	late := testCycle(CycleStatusActive)
	assert.False(t, late.Complete(pastWindow))
	assert.Equal(t, CycleStatusActive, late.Status)

	planned := testCycle(CycleStatusPlanned)
	assert.False(t, planned.Complete(inWindow))
}

func TestCycleCancel(t *testing.T) {
	planned := testCycle(CycleStatusPlanned)
	assert.True(t, planned.Cancel())
	assert.Equal(t, CycleStatusCancelled, planned.Status)

	active := testCycle(CycleStatusActive)
	assert.True(t, active.Cancel())

	done := testCycle(CycleStatusCompleted)
	assert.False(t, done.Cancel())
	assert.Equal(t, CycleStatusCompleted, done.Status)
}

func TestCycleIsOverdue(t *testing.T) {
	c := testCycle(CycleStatusActive)
	assert.False(t, c.IsOverdue(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, c.IsOverdue(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))

	done := testCycle(CycleStatusCompleted)
	assert.False(t, done.IsOverdue(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCycleDaysRemaining(t *testing.T) {
	c := testCycle(CycleStatusActive)

	assert.Equal(t, 10, c.DaysRemaining(time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, c.DaysRemaining(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))

	done := testCycle(CycleStatusCompleted)
	assert.Equal(t, 0, done.DaysRemaining(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, float64(0), CompletionPercentage(0, 0))
	assert.Equal(t, float64(50), CompletionPercentage(5, 10))
	assert.Equal(t, float64(100), CompletionPercentage(4, 4))
}
