package assessment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assessment statuses
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Competency weight at or above which an assessment always needs an
// approval step, regardless of assessment type.
var approvalWeightThreshold = decimal.NewFromFloat(4.0)

// Competency is a skill or behavior assessed within cycles. Weight drives
// the approval gate.
type Competency struct {
	ID        string
	Name      string
	Category  *string
	Weight    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assessment is one assessor's rating of one employee on one competency
// within a cycle.
//
// draft -> submitted -> approved | rejected
// Approved and rejected are terminal; there is no reopen path for a
// rejected assessment.
type Assessment struct {
	ID               string
	CycleID          string
	EmployeeID       string
	CompetencyID     string
	AssessorID       string
	AssessmentType   string // self | manager | peer | 360
	Rating           *int   // 1-5, nil until submission
	Comments         *string
	Status           string
	SubmittedAt      *time.Time
	ExtendedDeadline *time.Time // overrides the cycle end date when set
	ApprovedAt       *time.Time
	ApprovedBy       *string
	RejectedAt       *time.Time
	RejectedBy       *string
	RejectionReason  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for list/report views
	EmployeeName   *string
	CompetencyName *string
	AssessorName   *string
}

// Submit moves a draft to submitted at now. Rating and comment requirements
// are a validation contract enforced by the caller; the entity only guards
// the transition itself.
func (a *Assessment) Submit(now time.Time) bool {
	if a.Status != StatusDraft {
		return false
	}

	at := now
	a.Status = StatusSubmitted
	a.SubmittedAt = &at
	return true
}

// Approve moves a submitted assessment to approved. No-op from any other
// state, including draft.
func (a *Assessment) Approve(now time.Time, approverID string) bool {
	if a.Status != StatusSubmitted {
		return false
	}

	at := now
	a.Status = StatusApproved
	a.ApprovedAt = &at
	a.ApprovedBy = &approverID
	return true
}

// Reject moves a submitted assessment to rejected with a reason.
func (a *Assessment) Reject(now time.Time, rejecterID, reason string) bool {
	if a.Status != StatusSubmitted {
		return false
	}

	at := now
	a.Status = StatusRejected
	a.RejectedAt = &at
	a.RejectedBy = &rejecterID
	a.RejectionReason = &reason
	return true
}

// ExtendDeadline sets a per-assessment deadline override. Only drafts can
// be extended; once submitted the deadline no longer matters.
func (a *Assessment) ExtendDeadline(deadline time.Time) bool {
	if a.Status != StatusDraft {
		return false
	}

	d := deadline
	a.ExtendedDeadline = &d
	return true
}

// EffectiveDeadline returns the extended deadline when present, else the
// parent cycle's end date.
func (a *Assessment) EffectiveDeadline(cycleEnd time.Time) time.Time {
	if a.ExtendedDeadline != nil {
		return *a.ExtendedDeadline
	}
	return cycleEnd
}

// IsOverdue is only meaningful for drafts: a draft whose effective deadline
// has passed.
func (a *Assessment) IsOverdue(now, cycleEnd time.Time) bool {
	return a.Status == StatusDraft && now.After(a.EffectiveDeadline(cycleEnd))
}

// RequiresApproval reports whether the approval step is mandatory before the
// assessment counts toward cycle completion: manager assessments always,
// otherwise any competency weighted at or above the threshold.
func (a *Assessment) RequiresApproval(competencyWeight decimal.Decimal) bool {
	if a.AssessmentType == TypeManager {
		return true
	}
	return competencyWeight.GreaterThanOrEqual(approvalWeightThreshold)
}

// IsExtremeRating reports whether a rating demands written justification.
func IsExtremeRating(rating int) bool {
	return rating <= 2 || rating >= 4
}
