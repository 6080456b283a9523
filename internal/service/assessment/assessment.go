package assessment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/workday"
	"github.com/workstream-hr/workforce-backend-go/internal/repository/postgresql"
)

type AssessmentServiceImpl struct {
	db       *database.DB
	location *time.Location
	assessment.AssessmentRepository
	assessment.CycleRepository
	assessment.CompetencyRepository
}

func NewAssessmentService(
	db *database.DB,
	location *time.Location,
	assessmentRepo assessment.AssessmentRepository,
	cycleRepo assessment.CycleRepository,
	competencyRepo assessment.CompetencyRepository,
) assessment.AssessmentService {
	return &AssessmentServiceImpl{
		db:                   db,
		location:             location,
		AssessmentRepository: assessmentRepo,
		CycleRepository:      cycleRepo,
		CompetencyRepository: competencyRepo,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

func (s *AssessmentServiceImpl) today() time.Time {
	return workday.Date(time.Now(), s.location)
}

// toAssessmentResponse resolves the effective deadline against the parent
// cycle and the approval gate against the competency weight. Lookups are
// cached per call so list views stay at three queries.
func (s *AssessmentServiceImpl) toAssessmentResponse(
	ctx context.Context,
	a assessment.Assessment,
	cycles map[string]assessment.Cycle,
	competencies map[string]assessment.Competency,
) (assessment.AssessmentResponse, error) {
	cycle, ok := cycles[a.CycleID]
	if !ok {
		var err error
		cycle, err = s.CycleRepository.GetByID(ctx, a.CycleID)
		if err != nil {
			return assessment.AssessmentResponse{}, err
		}
		cycles[a.CycleID] = cycle
	}

	competency, ok := competencies[a.CompetencyID]
	if !ok {
		var err error
		competency, err = s.CompetencyRepository.GetByID(ctx, a.CompetencyID)
		if err != nil {
			return assessment.AssessmentResponse{}, err
		}
		competencies[a.CompetencyID] = competency
	}

	today := s.today()

	return assessment.AssessmentResponse{
		ID:                a.ID,
		CycleID:           a.CycleID,
		EmployeeID:        a.EmployeeID,
		EmployeeName:      a.EmployeeName,
		CompetencyID:      a.CompetencyID,
		CompetencyName:    a.CompetencyName,
		AssessorID:        a.AssessorID,
		AssessorName:      a.AssessorName,
		AssessmentType:    a.AssessmentType,
		Rating:            a.Rating,
		Comments:          a.Comments,
		Status:            a.Status,
		SubmittedAt:       timePtrToString(a.SubmittedAt),
		EffectiveDeadline: a.EffectiveDeadline(cycle.EndDate).Format("2006-01-02"),
		IsOverdue:         a.IsOverdue(today, cycle.EndDate),
		RequiresApproval:  a.RequiresApproval(competency.Weight),
		ApprovedAt:        timePtrToString(a.ApprovedAt),
		ApprovedBy:        a.ApprovedBy,
		RejectedAt:        timePtrToString(a.RejectedAt),
		RejectedBy:        a.RejectedBy,
		RejectionReason:   a.RejectionReason,
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// AssignAssessment implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) AssignAssessment(ctx context.Context, req assessment.AssignAssessmentRequest) (assessment.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	// Cycle verification and draft creation share one transaction so a
	// cycle cancelled mid-request cannot gain a fresh draft.
	var cycle assessment.Cycle
	var competency assessment.Competency
	var created assessment.Assessment
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		var err error
		cycle, err = s.CycleRepository.GetByID(ctx, req.CycleID)
		if err != nil {
			return err
		}
		if cycle.IsTerminal() {
			return assessment.ErrCycleAlreadyProcessed
		}

		typeAllowed := false
		for _, t := range cycle.AssessmentTypes {
			if t == req.AssessmentType {
				typeAllowed = true
				break
			}
		}
		if !typeAllowed {
			return fmt.Errorf("assessment type %q is not part of cycle %q", req.AssessmentType, cycle.Name)
		}

		competency, err = s.CompetencyRepository.GetByID(ctx, req.CompetencyID)
		if err != nil {
			return err
		}

		created, err = s.AssessmentRepository.Create(ctx, assessment.Assessment{
			CycleID:        req.CycleID,
			EmployeeID:     req.EmployeeID,
			CompetencyID:   req.CompetencyID,
			AssessorID:     req.AssessorID,
			AssessmentType: req.AssessmentType,
			Status:         assessment.StatusDraft,
		})
		return err
	})
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	cycles := map[string]assessment.Cycle{cycle.ID: cycle}
	competencies := map[string]assessment.Competency{competency.ID: competency}
	return s.toAssessmentResponse(ctx, created, cycles, competencies)
}

// SubmitAssessment implements assessment.AssessmentService. The rating
// contract (range plus extreme-rating comments) is enforced by the request
// validation; the conditional update enforces the draft-only transition.
func (s *AssessmentServiceImpl) SubmitAssessment(ctx context.Context, req assessment.SubmitAssessmentRequest) (assessment.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	assessorID, err := employeeIDFromContext(ctx)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	a, err := s.AssessmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	if a.AssessorID != assessorID {
		return assessment.AssessmentResponse{}, assessment.ErrNotAssessor
	}

	if !a.Submit(time.Now().UTC()) {
		return assessment.AssessmentResponse{}, assessment.ErrAssessmentNotDraft
	}
	a.Rating = req.Rating
	a.Comments = req.Comments

	if err := s.AssessmentRepository.UpdateTransition(ctx, a, assessment.StatusDraft); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	return s.toAssessmentResponse(ctx, a,
		map[string]assessment.Cycle{}, map[string]assessment.Competency{})
}

// ApproveAssessment implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) ApproveAssessment(ctx context.Context, id string) (assessment.AssessmentResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	a, err := s.AssessmentRepository.GetByID(ctx, id)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	if !a.Approve(time.Now().UTC(), userID) {
		if a.Status == assessment.StatusDraft {
			return assessment.AssessmentResponse{}, assessment.ErrAssessmentNotSubmitted
		}
		return assessment.AssessmentResponse{}, assessment.ErrAssessmentAlreadyProcessed
	}

	if err := s.AssessmentRepository.UpdateTransition(ctx, a, assessment.StatusSubmitted); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	return s.toAssessmentResponse(ctx, a,
		map[string]assessment.Cycle{}, map[string]assessment.Competency{})
}

// RejectAssessment implements assessment.AssessmentService. Rejection is
// terminal: there is no path back to draft.
func (s *AssessmentServiceImpl) RejectAssessment(ctx context.Context, req assessment.RejectAssessmentRequest) (assessment.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	a, err := s.AssessmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	if !a.Reject(time.Now().UTC(), userID, req.Reason) {
		if a.Status == assessment.StatusDraft {
			return assessment.AssessmentResponse{}, assessment.ErrAssessmentNotSubmitted
		}
		return assessment.AssessmentResponse{}, assessment.ErrAssessmentAlreadyProcessed
	}

	if err := s.AssessmentRepository.UpdateTransition(ctx, a, assessment.StatusSubmitted); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	return s.toAssessmentResponse(ctx, a,
		map[string]assessment.Cycle{}, map[string]assessment.Competency{})
}

// ExtendDeadline implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) ExtendDeadline(ctx context.Context, req assessment.ExtendDeadlineRequest) (assessment.AssessmentResponse, error) {
	deadline, err := req.Validate()
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	a, err := s.AssessmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	if !a.ExtendDeadline(deadline) {
		return assessment.AssessmentResponse{}, assessment.ErrAssessmentNotDraft
	}

	if err := s.AssessmentRepository.UpdateDeadline(ctx, a.ID, deadline); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	return s.toAssessmentResponse(ctx, a,
		map[string]assessment.Cycle{}, map[string]assessment.Competency{})
}

// ReassignAssessor implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) ReassignAssessor(ctx context.Context, req assessment.ReassignAssessmentRequest) (assessment.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	a, err := s.AssessmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	if err := s.AssessmentRepository.UpdateAssessor(ctx, a.ID, req.AssessorID); err != nil {
		return assessment.AssessmentResponse{}, err
	}
	a.AssessorID = req.AssessorID
	a.AssessorName = nil

	return s.toAssessmentResponse(ctx, a,
		map[string]assessment.Cycle{}, map[string]assessment.Competency{})
}

// GetMyAssessments implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) GetMyAssessments(ctx context.Context, filter assessment.AssessmentFilter) (assessment.ListAssessmentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return assessment.ListAssessmentsResponse{}, err
	}

	assessorID, err := employeeIDFromContext(ctx)
	if err != nil {
		return assessment.ListAssessmentsResponse{}, err
	}
	filter.AssessorID = &assessorID

	return s.list(ctx, filter)
}

// ListAssessments implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) ListAssessments(ctx context.Context, filter assessment.AssessmentFilter) (assessment.ListAssessmentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return assessment.ListAssessmentsResponse{}, err
	}

	return s.list(ctx, filter)
}

func (s *AssessmentServiceImpl) list(ctx context.Context, filter assessment.AssessmentFilter) (assessment.ListAssessmentsResponse, error) {
	assessments, total, err := s.AssessmentRepository.List(ctx, filter)
	if err != nil {
		return assessment.ListAssessmentsResponse{}, err
	}

	cycles := map[string]assessment.Cycle{}

	// The competency catalogue is small; one query beats a lookup per row
	competencies := map[string]assessment.Competency{}
	if len(assessments) > 0 {
		all, err := s.CompetencyRepository.List(ctx)
		if err != nil {
			return assessment.ListAssessmentsResponse{}, err
		}
		for _, c := range all {
			competencies[c.ID] = c
		}
	}

	responses := make([]assessment.AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		resp, err := s.toAssessmentResponse(ctx, a, cycles, competencies)
		if err != nil {
			return assessment.ListAssessmentsResponse{}, err
		}
		responses = append(responses, resp)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	return assessment.ListAssessmentsResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		Assessments: responses,
	}, nil
}
