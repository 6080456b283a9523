package assessment

import (
	"context"
)

// CycleService defines business logic for assessment cycles.
type CycleService interface {
	CreateCycle(ctx context.Context, req CreateCycleRequest) (CycleResponse, error)
	StartCycle(ctx context.Context, req StartCycleRequest) (CycleResponse, error)
	CompleteCycle(ctx context.Context, id string) (CycleResponse, error)
	CancelCycle(ctx context.Context, id string) (CycleResponse, error)
	GetCycle(ctx context.Context, id string) (CycleResponse, error)
	ListCycles(ctx context.Context) (ListCyclesResponse, error)
	GetCycleProgress(ctx context.Context, id string) (CycleProgressResponse, error)
}

// AssessmentService defines business logic for competency assessments.
type AssessmentService interface {
	// AssignAssessment creates a draft assessment inside a cycle
	AssignAssessment(ctx context.Context, req AssignAssessmentRequest) (AssessmentResponse, error)

	// SubmitAssessment validates the rating contract and moves a draft to
	// submitted. Only the assigned assessor may submit.
	SubmitAssessment(ctx context.Context, req SubmitAssessmentRequest) (AssessmentResponse, error)

	// ApproveAssessment moves a submitted assessment to approved
	ApproveAssessment(ctx context.Context, id string) (AssessmentResponse, error)

	// RejectAssessment moves a submitted assessment to rejected with a reason
	RejectAssessment(ctx context.Context, req RejectAssessmentRequest) (AssessmentResponse, error)

	// ExtendDeadline overrides a draft's effective deadline
	ExtendDeadline(ctx context.Context, req ExtendDeadlineRequest) (AssessmentResponse, error)

	// ReassignAssessor hands the assessment to another assessor
	ReassignAssessor(ctx context.Context, req ReassignAssessmentRequest) (AssessmentResponse, error)

	// GetMyAssessments lists assessments where the caller is the assessor
	GetMyAssessments(ctx context.Context, filter AssessmentFilter) (ListAssessmentsResponse, error)

	// ListAssessments lists assessments with filters (HR/manager)
	ListAssessments(ctx context.Context, filter AssessmentFilter) (ListAssessmentsResponse, error)
}
