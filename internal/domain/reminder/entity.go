package reminder

import (
	"time"
)

// Reminder types
const (
	TypeMissingClockIn     = "missing_clock_in"
	TypeBreakOverLimit     = "break_over_limit"
	TypeAssessmentDeadline = "assessment_deadline"
)

// Log records one delivered reminder. Sends are deduplicated on
// (employee_id, reminder_date, reminder_type): re-running a sweep never
// mails the same person twice for the same day and reason.
type Log struct {
	ID           string
	EmployeeID   string
	ReminderType string
	ReminderDate time.Time // local work day the reminder is about
	SentAt       time.Time
}
