package report

import (
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/validator"
)

// MissingClockInRow is one employee with no attendance session today.
type MissingClockInRow struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

type MissingClockInReport struct {
	Date        string              `json:"date"`
	GeneratedAt string              `json:"generated_at"`
	TotalCount  int                 `json:"total_count"`
	Rows        []MissingClockInRow `json:"rows"`
}

// BreakViolationRow is one employee whose open break exceeds the limit for
// its break number.
type BreakViolationRow struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Department      string `json:"department"`
	BreakNumber     int    `json:"break_number"`
	DurationMinutes int    `json:"duration_minutes"`
	LimitMinutes    int    `json:"limit_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
	BreakStart      string `json:"break_start"`
}

type BreakViolationReport struct {
	Date        string              `json:"date"`
	GeneratedAt string              `json:"generated_at"`
	TotalCount  int                 `json:"total_count"`
	Rows        []BreakViolationRow `json:"rows"`
}

type MissingClockInRequest struct {
	Date *string // defaults to today in company timezone
}

func (r *MissingClockInRequest) Validate() error {
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			return validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
	}
	return nil
}
