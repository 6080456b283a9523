package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func openSession(clockIn time.Time) *Session {
	return &Session{
		ID:         "sess-1",
		EmployeeID: "emp-1",
		WorkDate:   clockIn.Truncate(24 * time.Hour),
		ClockIn:    &clockIn,
		Status:     StatusClockedIn,
	}
}

func TestWorkMinutesFullDayWithBreak(t *testing.T) {
	// Clock in 09:00, break 10:00-10:20, clock out 17:00 => 480 - 20 = 460
	s := openSession(dayAt(9, 0))

	require.True(t, s.StartBreak(dayAt(10, 0)))
	require.True(t, s.EndBreak(dayAt(10, 20)))
	require.True(t, s.CompleteClockOut(dayAt(17, 0)))

	assert.Equal(t, 460, s.WorkMinutes(dayAt(18, 0)))
	assert.Equal(t, 20, s.TotalBreakMinutes)
}

func TestWorkMinutesNeverClockedIn(t *testing.T) {
	s := &Session{EmployeeID: "emp-1", Status: StatusClockedOut}
	assert.Equal(t, 0, s.WorkMinutes(dayAt(12, 0)))
}

func TestWorkMinutesClampsCorruptedData(t *testing.T) {
	// Bad manual edit: clock-out before clock-in must yield 0, not negative
	in := dayAt(17, 0)
	out := dayAt(9, 0)
	s := &Session{ClockIn: &in, ClockOut: &out, Status: StatusClockedOut}

	assert.Equal(t, 0, s.WorkMinutes(dayAt(18, 0)))
	assert.GreaterOrEqual(t, s.WorkMinutes(dayAt(18, 0)), 0)
}

func TestStartBreakIdempotentWhenAlreadyOnBreak(t *testing.T) {
	s := openSession(dayAt(9, 0))

	require.True(t, s.StartBreak(dayAt(10, 0)))
	firstStart := *s.CurrentBreakStart

	// Second start must be a no-op: no second open break, start unchanged
	assert.False(t, s.StartBreak(dayAt(10, 5)))
	assert.Equal(t, firstStart, *s.CurrentBreakStart)
	assert.Len(t, s.BreakSessions, 0)
	assert.Equal(t, StatusOnBreak, s.Status)
}

func TestStartBreakRequiresOpenSession(t *testing.T) {
	s := &Session{EmployeeID: "emp-1", Status: StatusClockedOut}
	assert.False(t, s.StartBreak(dayAt(10, 0)))

	closed := openSession(dayAt(9, 0))
	require.True(t, closed.CompleteClockOut(dayAt(17, 0)))
	assert.False(t, closed.StartBreak(dayAt(17, 30)))
}

func TestEndBreakWithoutOpenBreakIsNoOp(t *testing.T) {
	s := openSession(dayAt(9, 0))

	assert.False(t, s.EndBreak(dayAt(10, 0)))
	assert.Len(t, s.BreakSessions, 0)
	assert.Equal(t, 0, s.TotalBreakMinutes)
}

func TestEndThenStartIncrementsExactlyOnce(t *testing.T) {
	s := openSession(dayAt(9, 0))

	require.True(t, s.StartBreak(dayAt(10, 0)))
	require.True(t, s.EndBreak(dayAt(10, 15)))
	require.True(t, s.StartBreak(dayAt(11, 0)))

	assert.Len(t, s.BreakSessions, 1)
	assert.Equal(t, 15, s.TotalBreakMinutes)
	assert.Equal(t, 15, s.BreakSessions[0].DurationMinutes)

	// The open break is counted transiently, never folded into the accumulator
	assert.Equal(t, 15+10, s.BreakMinutes(dayAt(11, 10)))
	assert.Equal(t, 15, s.TotalBreakMinutes)
}

func TestBreakMinutesRoundTrip(t *testing.T) {
	s := openSession(dayAt(9, 0))

	require.True(t, s.StartBreak(dayAt(10, 0)))
	require.True(t, s.EndBreak(dayAt(10, 12)))
	require.True(t, s.StartBreak(dayAt(12, 0)))
	require.True(t, s.EndBreak(dayAt(12, 30)))
	require.True(t, s.StartBreak(dayAt(15, 0)))

	now := dayAt(15, 7)
	sum := 0
	for _, b := range s.BreakSessions {
		sum += b.DurationMinutes
	}
	sum += 7 // currently open break elapsed

	assert.Equal(t, sum, s.BreakMinutes(now))
}

func TestClockOutForceClosesOpenBreak(t *testing.T) {
	s := openSession(dayAt(9, 0))

	require.True(t, s.StartBreak(dayAt(16, 50)))
	require.True(t, s.CompleteClockOut(dayAt(17, 0)))

	assert.False(t, s.OnBreak)
	assert.Nil(t, s.CurrentBreakStart)
	assert.Len(t, s.BreakSessions, 1)
	assert.Equal(t, 10, s.TotalBreakMinutes)
	assert.Equal(t, StatusClockedOut, s.Status)
}

func TestClockOutTwiceIsNoOp(t *testing.T) {
	s := openSession(dayAt(9, 0))

	require.True(t, s.CompleteClockOut(dayAt(17, 0)))
	first := *s.ClockOut

	assert.False(t, s.CompleteClockOut(dayAt(18, 0)))
	assert.Equal(t, first, *s.ClockOut)
}

func TestCurrentSessionDuration(t *testing.T) {
	s := openSession(dayAt(9, 0))

	assert.Equal(t, "1h 30m 0s", s.CurrentSessionDuration(dayAt(10, 30)))

	require.True(t, s.StartBreak(dayAt(10, 30)))
	require.True(t, s.EndBreak(dayAt(10, 50)))
	assert.Equal(t, "2h 40m 0s", s.CurrentSessionDuration(dayAt(12, 0)))
}

func TestCurrentSessionDurationNoOpenSession(t *testing.T) {
	s := &Session{EmployeeID: "emp-1"}
	assert.Equal(t, "0h 0m 0s", s.CurrentSessionDuration(dayAt(12, 0)))

	closed := openSession(dayAt(9, 0))
	require.True(t, closed.CompleteClockOut(dayAt(17, 0)))
	assert.Equal(t, "0h 0m 0s", closed.CurrentSessionDuration(dayAt(18, 0)))
}

func TestIsClockedInTrustsTimestamps(t *testing.T) {
	// Stale status cache must not override the timestamp pair
	in := dayAt(9, 0)
	s := &Session{ClockIn: &in, Status: StatusClockedOut}
	assert.True(t, s.IsClockedIn())

	out := dayAt(17, 0)
	s.ClockOut = &out
	s.Status = StatusClockedIn
	assert.False(t, s.IsClockedIn())
}

func TestBreakLimitTable(t *testing.T) {
	assert.Equal(t, 15, BreakLimitMinutes(1))
	assert.Equal(t, 30, BreakLimitMinutes(2))
	assert.Equal(t, 15, BreakLimitMinutes(3))
	assert.Equal(t, 15, BreakLimitMinutes(4))
	assert.Equal(t, 15, BreakLimitMinutes(9))
}

func TestCurrentBreakNumber(t *testing.T) {
	s := openSession(dayAt(9, 0))
	assert.Equal(t, 1, s.CurrentBreakNumber())

	require.True(t, s.StartBreak(dayAt(10, 0)))
	require.True(t, s.EndBreak(dayAt(10, 10)))
	// One closed session, second break now open or next
	assert.Equal(t, 2, s.CurrentBreakNumber())
}
