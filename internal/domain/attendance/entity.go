package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Session statuses
const (
	StatusClockedOut = "clocked_out"
	StatusClockedIn  = "clocked_in"
	StatusOnBreak    = "on_break"
)

// Per-break-number overtime limits in minutes. Break number is the count of
// already-closed break sessions plus one. Numbers beyond the table fall back
// to DefaultBreakLimitMinutes.
var breakLimitMinutes = map[int]int{
	1: 15,
	2: 30,
	3: 15,
}

const DefaultBreakLimitMinutes = 15

// BreakLimitMinutes returns the allowed duration for the given break number.
func BreakLimitMinutes(breakNumber int) int {
	if limit, ok := breakLimitMinutes[breakNumber]; ok {
		return limit
	}
	return DefaultBreakLimitMinutes
}

// BreakSession is one closed break interval. Entries are append-only and
// their durations are fixed at close time, never recomputed.
type BreakSession struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

// BreakSessions is stored as a JSONB column.
type BreakSessions []BreakSession

// Value implements driver.Valuer for database storage
func (b BreakSessions) Value() (driver.Value, error) {
	if b == nil {
		return json.Marshal(BreakSessions{})
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for database retrieval
func (b *BreakSessions) Scan(value interface{}) error {
	if value == nil {
		*b = BreakSessions{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan BreakSessions: invalid type")
	}

	return json.Unmarshal(bytes, b)
}

// Session is one employee's attendance record for one work day.
// At most one row exists per (employee_id, work_date); the table carries a
// unique constraint and clock-in uses a guarded insert, so concurrent double
// clock-ins cannot create duplicates.
//
// Status is persisted for fast filtering but is derived from the timestamp
// fields; the timestamps are ground truth whenever the two disagree.
type Session struct {
	ID                string
	EmployeeID        string
	WorkDate          time.Time // local work day, truncated to date
	ClockIn           *time.Time
	ClockOut          *time.Time
	OnBreak           bool
	CurrentBreakStart *time.Time
	BreakSessions     BreakSessions
	TotalBreakMinutes int
	Status            string
	EditedBy          *string // set when a manager corrects the record
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined for list/report views
	EmployeeName *string
	Department   *string
}

// IsClockedIn reports whether the session is currently open. The timestamp
// pair is authoritative; Status only serves as a secondary cross-check.
func (s *Session) IsClockedIn() bool {
	return s.ClockIn != nil && s.ClockOut == nil
}

// StartBreak opens a break at now. Returns false without mutating anything
// when the session is not open or a break is already running, so calling it
// twice never double-opens a break.
func (s *Session) StartBreak(now time.Time) bool {
	if !s.IsClockedIn() || s.OnBreak {
		return false
	}

	start := now
	s.OnBreak = true
	s.CurrentBreakStart = &start
	s.Status = StatusOnBreak
	return true
}

// EndBreak closes the open break at now, appending a BreakSession with its
// whole-minute duration and folding that duration into TotalBreakMinutes.
// Returns false when no break is open.
func (s *Session) EndBreak(now time.Time) bool {
	if !s.OnBreak || s.CurrentBreakStart == nil {
		return false
	}

	duration := wholeMinutes(now.Sub(*s.CurrentBreakStart))
	s.BreakSessions = append(s.BreakSessions, BreakSession{
		Start:           *s.CurrentBreakStart,
		End:             now,
		DurationMinutes: duration,
	})
	s.TotalBreakMinutes += duration
	s.OnBreak = false
	s.CurrentBreakStart = nil
	s.Status = StatusClockedIn
	return true
}

// CompleteClockOut closes the session at now. An open break is force-closed
// first so a clocked-out session can never hold an open break. Returns false
// when the session is not open.
func (s *Session) CompleteClockOut(now time.Time) bool {
	if !s.IsClockedIn() {
		return false
	}

	if s.OnBreak {
		s.EndBreak(now)
	}

	out := now
	s.ClockOut = &out
	s.Status = StatusClockedOut
	return true
}

// WorkMinutes returns elapsed work time in whole minutes: total elapsed since
// clock-in (up to clock-out, or now for open sessions) minus all break time.
// The result is clamped at zero so corrupted records (clock-out before
// clock-in from a bad manual edit) render as zero rather than a negative
// duration. Never returns an error: this feeds UI render paths.
func (s *Session) WorkMinutes(now time.Time) int {
	if s.ClockIn == nil {
		return 0
	}

	end := now
	if s.ClockOut != nil {
		end = *s.ClockOut
	}

	elapsed := wholeMinutes(end.Sub(*s.ClockIn))
	worked := elapsed - s.BreakMinutes(now)
	if worked < 0 {
		return 0
	}
	return worked
}

// BreakMinutes returns closed break time plus the elapsed minutes of the
// currently open break, if any. The open break is added transiently at read
// time and is only folded into TotalBreakMinutes by EndBreak.
func (s *Session) BreakMinutes(now time.Time) int {
	total := s.TotalBreakMinutes
	if s.OnBreak && s.CurrentBreakStart != nil {
		total += wholeMinutes(now.Sub(*s.CurrentBreakStart))
	}
	if total < 0 {
		return 0
	}
	return total
}

// CurrentBreakNumber returns the ordinal of the current or next break.
func (s *Session) CurrentBreakNumber() int {
	return len(s.BreakSessions) + 1
}

// CurrentSessionDuration formats the open session's net work time at second
// resolution. Returns "0h 0m 0s" when there is no open session.
func (s *Session) CurrentSessionDuration(now time.Time) string {
	if !s.IsClockedIn() {
		return "0h 0m 0s"
	}

	elapsed := now.Sub(*s.ClockIn)

	breaks := time.Duration(s.TotalBreakMinutes) * time.Minute
	if s.OnBreak && s.CurrentBreakStart != nil {
		breaks += now.Sub(*s.CurrentBreakStart)
	}

	net := elapsed - breaks
	if net < 0 {
		net = 0
	}

	hours := int(net.Hours())
	minutes := int(net.Minutes()) % 60
	seconds := int(net.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

func wholeMinutes(d time.Duration) int {
	return int(d.Minutes())
}
