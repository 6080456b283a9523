package assessment

import (
	"strings"
	"time"

	"github.com/workstream-hr/workforce-backend-go/internal/pkg/validator"
)

type CreateCycleRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	AssessmentTypes []string `json:"assessment_types"`
	TargetEmployees []string `json:"target_employees"`
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
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

	if len(r.AssessmentTypes) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assessment_types",
			Message: "at least one assessment type is required",
		})
	}
	for _, t := range r.AssessmentTypes {
		if !validator.IsInSlice(t, AssessmentTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "assessment_types",
				Message: "assessment types must be among self, manager, peer, 360",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StartCycleRequest struct {
	ID            string `json:"-"`
	AdminOverride bool   `json:"admin_override"`
}

type CycleResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Status          string   `json:"status"`
	IsActive        bool     `json:"is_active"`
	IsOverdue       bool     `json:"is_overdue"`
	DaysRemaining   int      `json:"days_remaining"`
	AssessmentTypes []string `json:"assessment_types"`
	TargetEmployees []string `json:"target_employees"`
}

type ListCyclesResponse struct {
	TotalCount int64           `json:"total_count"`
	Cycles     []CycleResponse `json:"cycles"`
}

// CycleProgressResponse summarizes a cycle's assessments
type CycleProgressResponse struct {
	CycleID              string  `json:"cycle_id"`
	TotalAssessments     int     `json:"total_assessments"`
	DraftCount           int     `json:"draft_count"`
	SubmittedCount       int     `json:"submitted_count"`
	ApprovedCount        int     `json:"approved_count"`
	RejectedCount        int     `json:"rejected_count"`
	OverdueCount         int     `json:"overdue_count"`
	CompletionPercentage float64 `json:"completion_percentage"`
	AverageRating        *string `json:"average_rating,omitempty"`
}

type AssignAssessmentRequest struct {
	CycleID        string `json:"cycle_id"`
	EmployeeID     string `json:"employee_id"`
	CompetencyID   string `json:"competency_id"`
	AssessorID     string `json:"assessor_id"`
	AssessmentType string `json:"assessment_type"`
}

func (r *AssignAssessmentRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"cycle_id":      r.CycleID,
		"employee_id":   r.EmployeeID,
		"competency_id": r.CompetencyID,
		"assessor_id":   r.AssessorID,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if !validator.IsInSlice(r.AssessmentType, AssessmentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "assessment_type",
			Message: "assessment_type must be one of self, manager, peer, 360",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitAssessmentRequest struct {
	ID       string  `json:"-"`
	Rating   *int    `json:"rating"`
	Comments *string `json:"comments,omitempty"`
}

// Validate enforces the submission contract: a rating is mandatory and
// extreme ratings (<=2 or >=4) demand a written justification.
func (r *SubmitAssessmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Rating == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating is required",
		})
	} else {
		if *r.Rating < 1 || *r.Rating > 5 {
			errs = append(errs, validator.ValidationError{
				Field:   "rating",
				Message: "rating must be between 1 and 5",
			})
		} else if IsExtremeRating(*r.Rating) {
			if r.Comments == nil || strings.TrimSpace(*r.Comments) == "" {
				errs = append(errs, validator.ValidationError{
					Field:   "comments",
					Message: "comments are required for ratings of 2 or below and 4 or above",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectAssessmentRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectAssessmentRequest) Validate() error {
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

type ExtendDeadlineRequest struct {
	ID       string `json:"-"`
	Deadline string `json:"deadline"`
}

func (r *ExtendDeadlineRequest) Validate() (time.Time, error) {
	deadline, ok := validator.IsValidDate(r.Deadline)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "deadline",
			Message: "deadline must be in YYYY-MM-DD format",
		}}
	}
	return deadline, nil
}

type ReassignAssessmentRequest struct {
	ID         string `json:"-"`
	AssessorID string `json:"assessor_id"`
}

func (r *ReassignAssessmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssessorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assessor_id",
			Message: "assessor_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssessmentResponse struct {
	ID                string  `json:"id"`
	CycleID           string  `json:"cycle_id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	CompetencyID      string  `json:"competency_id"`
	CompetencyName    *string `json:"competency_name,omitempty"`
	AssessorID        string  `json:"assessor_id"`
	AssessorName      *string `json:"assessor_name,omitempty"`
	AssessmentType    string  `json:"assessment_type"`
	Rating            *int    `json:"rating"`
	Comments          *string `json:"comments,omitempty"`
	Status            string  `json:"status"`
	SubmittedAt       *string `json:"submitted_at,omitempty"`
	EffectiveDeadline string  `json:"effective_deadline"`
	IsOverdue         bool    `json:"is_overdue"`
	RequiresApproval  bool    `json:"requires_approval"`
	ApprovedAt        *string `json:"approved_at,omitempty"`
	ApprovedBy        *string `json:"approved_by,omitempty"`
	RejectedAt        *string `json:"rejected_at,omitempty"`
	RejectedBy        *string `json:"rejected_by,omitempty"`
	RejectionReason   *string `json:"rejection_reason,omitempty"`
}

type AssessmentFilter struct {
	CycleID        *string
	EmployeeID     *string
	AssessorID     *string
	Status         *string
	AssessmentType *string
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
}

func (f *AssessmentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of draft, submitted, approved, rejected",
			})
		}
	}
	if f.AssessmentType != nil && *f.AssessmentType != "" {
		if !validator.IsInSlice(*f.AssessmentType, AssessmentTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "assessment_type",
				Message: "assessment_type must be one of self, manager, peer, 360",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAssessmentsResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Assessments []AssessmentResponse `json:"assessments"`
}
