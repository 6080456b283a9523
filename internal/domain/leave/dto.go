package leave

import (
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveTypeName string  `json:"leave_type_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	LeaveTypeName   string  `json:"leave_type_name"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          *string `json:"reason,omitempty"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		valid := []string{
			string(RequestStatusWaitingApproval),
			string(RequestStatusApproved),
			string(RequestStatusRejected),
			string(RequestStatusCancelled),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of waiting_approval, approved, rejected, cancelled",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListLeaveRequestsResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Requests   []LeaveRequestResponse `json:"requests"`
}
