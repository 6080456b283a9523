package attendance

import (
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/validator"
)

// SessionResponse is the API shape of a session
type SessionResponse struct {
	ID                string                 `json:"id"`
	EmployeeID        string                 `json:"employee_id"`
	EmployeeName      *string                `json:"employee_name,omitempty"`
	Department        *string                `json:"department,omitempty"`
	WorkDate          string                 `json:"work_date"`
	ClockInTime       *string                `json:"clock_in_time"`
	ClockOutTime      *string                `json:"clock_out_time"`
	OnBreak           bool                   `json:"on_break"`
	CurrentBreakStart *string                `json:"current_break_start,omitempty"`
	BreakSessions     []BreakSessionResponse `json:"break_sessions"`
	TotalBreakMinutes int                    `json:"total_break_minutes"`
	WorkMinutes       int                    `json:"work_minutes"`
	SessionDuration   string                 `json:"session_duration"`
	Status            string                 `json:"status"`
	EditedBy          *string                `json:"edited_by,omitempty"`
}

type BreakSessionResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
}

// BreakActionResponse is returned by the break start/end endpoints. A guard
// violation (double start, end without open break) is reported through
// Success=false, never as an error.
type BreakActionResponse struct {
	Success       bool                   `json:"success"`
	BreakSessions []BreakSessionResponse `json:"break_sessions,omitempty"`
	Session       *SessionResponse       `json:"session,omitempty"`
}

type ClockActionResponse struct {
	Success bool             `json:"success"`
	Session *SessionResponse `json:"session,omitempty"`
}

// SessionFilter filters session listings
type SessionFilter struct {
	EmployeeID   *string
	EmployeeName *string
	Date         *string
	StartDate    *string
	EndDate      *string
	Status       *string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{StatusClockedOut, StatusClockedIn, StatusOnBreak}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of clocked_out, clocked_in, on_break",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateSessionRequest fixes wrong clock data. The editor is recorded on the
// session; durations are recomputed, clamped at zero when the correction is
// itself inconsistent.
type UpdateSessionRequest struct {
	ID           string  `json:"-"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Status != nil && *r.Status != "" {
		if !validator.IsInSlice(*r.Status, []string{StatusClockedOut, StatusClockedIn, StatusOnBreak}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of clocked_out, clocked_in, on_break",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSessionsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Showing    string            `json:"showing"`
	Sessions   []SessionResponse `json:"sessions"`
}
