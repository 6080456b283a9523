package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/user"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/workday"
)

type CycleServiceImpl struct {
	db       *database.DB
	location *time.Location
	assessment.CycleRepository
	assessment.AssessmentRepository
}

func NewCycleService(
	db *database.DB,
	location *time.Location,
	cycleRepo assessment.CycleRepository,
	assessmentRepo assessment.AssessmentRepository,
) assessment.CycleService {
	return &CycleServiceImpl{
		db:                   db,
		location:             location,
		CycleRepository:      cycleRepo,
		AssessmentRepository: assessmentRepo,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func roleFromContext(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("role claim is missing or invalid")
	}

	return user.Role(role), nil
}

// today returns the current company-local day at midnight. Cycle windows are
// date-granular, so both boundary days count as inside the window.
func (s *CycleServiceImpl) today() time.Time {
	return workday.Date(time.Now(), s.location)
}

func (s *CycleServiceImpl) toCycleResponse(cycle assessment.Cycle) assessment.CycleResponse {
	today := s.today()

	return assessment.CycleResponse{
		ID:              cycle.ID,
		Name:            cycle.Name,
		Description:     cycle.Description,
		StartDate:       cycle.StartDate.Format("2006-01-02"),
		EndDate:         cycle.EndDate.Format("2006-01-02"),
		Status:          cycle.Status,
		IsActive:        cycle.IsActive(),
		IsOverdue:       cycle.IsOverdue(today),
		DaysRemaining:   cycle.DaysRemaining(today),
		AssessmentTypes: cycle.AssessmentTypes,
		TargetEmployees: cycle.TargetEmployees,
	}
}

// CreateCycle implements assessment.CycleService.
func (s *CycleServiceImpl) CreateCycle(ctx context.Context, req assessment.CreateCycleRequest) (assessment.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.CycleResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return assessment.CycleResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	cycle := assessment.Cycle{
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          assessment.CycleStatusPlanned,
		AssessmentTypes: req.AssessmentTypes,
		TargetEmployees: req.TargetEmployees,
		CreatedBy:       userID,
	}

	created, err := s.CycleRepository.Create(ctx, cycle)
	if err != nil {
		return assessment.CycleResponse{}, err
	}

	return s.toCycleResponse(created), nil
}

// StartCycle implements assessment.CycleService. Starting before the
// scheduled start date requires the admin override, and the override itself
// requires the admin role.
func (s *CycleServiceImpl) StartCycle(ctx context.Context, req assessment.StartCycleRequest) (assessment.CycleResponse, error) {
	cycle, err := s.CycleRepository.GetByID(ctx, req.ID)
	if err != nil {
		return assessment.CycleResponse{}, err
	}

	if req.AdminOverride {
		role, err := roleFromContext(ctx)
		if err != nil {
			return assessment.CycleResponse{}, err
		}
		if role != user.RoleAdmin {
			return assessment.CycleResponse{}, user.ErrAdminAccessRequired
		}
	}

	fromStatus := cycle.Status
	if !cycle.Start(s.today(), req.AdminOverride) {
		if cycle.IsTerminal() {
			return assessment.CycleResponse{}, assessment.ErrCycleAlreadyProcessed
		}
		return assessment.CycleResponse{}, assessment.ErrCycleNotStartable
	}

	if err := s.CycleRepository.UpdateStatus(ctx, cycle.ID, fromStatus, cycle.Status); err != nil {
		return assessment.CycleResponse{}, err
	}

	return s.toCycleResponse(cycle), nil
}

// CompleteCycle implements assessment.CycleService.
func (s *CycleServiceImpl) CompleteCycle(ctx context.Context, id string) (assessment.CycleResponse, error) {
	cycle, err := s.CycleRepository.GetByID(ctx, id)
	if err != nil {
		return assessment.CycleResponse{}, err
	}

	fromStatus := cycle.Status
	if !cycle.Complete(s.today()) {
		if cycle.IsTerminal() {
			return assessment.CycleResponse{}, assessment.ErrCycleAlreadyProcessed
		}
		return assessment.CycleResponse{}, assessment.ErrCycleNotCompletable
	}

	if err := s.CycleRepository.UpdateStatus(ctx, cycle.ID, fromStatus, cycle.Status); err != nil {
		return assessment.CycleResponse{}, err
	}

	return s.toCycleResponse(cycle), nil
}

// CancelCycle implements assessment.CycleService.
func (s *CycleServiceImpl) CancelCycle(ctx context.Context, id string) (assessment.CycleResponse, error) {
	cycle, err := s.CycleRepository.GetByID(ctx, id)
	if err != nil {
		return assessment.CycleResponse{}, err
	}

	fromStatus := cycle.Status
	if !cycle.Cancel() {
		return assessment.CycleResponse{}, assessment.ErrCycleAlreadyProcessed
	}

	if err := s.CycleRepository.UpdateStatus(ctx, cycle.ID, fromStatus, cycle.Status); err != nil {
		return assessment.CycleResponse{}, err
	}

	return s.toCycleResponse(cycle), nil
}

// GetCycle implements assessment.CycleService.
func (s *CycleServiceImpl) GetCycle(ctx context.Context, id string) (assessment.CycleResponse, error) {
	cycle, err := s.CycleRepository.GetByID(ctx, id)
	if err != nil {
		return assessment.CycleResponse{}, err
	}

	return s.toCycleResponse(cycle), nil
}

// ListCycles implements assessment.CycleService.
func (s *CycleServiceImpl) ListCycles(ctx context.Context) (assessment.ListCyclesResponse, error) {
	cycles, err := s.CycleRepository.List(ctx)
	if err != nil {
		return assessment.ListCyclesResponse{}, err
	}

	responses := make([]assessment.CycleResponse, 0, len(cycles))
	for _, cycle := range cycles {
		responses = append(responses, s.toCycleResponse(cycle))
	}

	return assessment.ListCyclesResponse{
		TotalCount: int64(len(responses)),
		Cycles:     responses,
	}, nil
}

// GetCycleProgress implements assessment.CycleService. Submitted, approved
// and rejected assessments all count as completed work.
func (s *CycleServiceImpl) GetCycleProgress(ctx context.Context, id string) (assessment.CycleProgressResponse, error) {
	cycle, err := s.CycleRepository.GetByID(ctx, id)
	if err != nil {
		return assessment.CycleProgressResponse{}, err
	}

	counts, err := s.AssessmentRepository.CountByStatus(ctx, cycle.ID)
	if err != nil {
		return assessment.CycleProgressResponse{}, err
	}

	draftCount := counts[assessment.StatusDraft]
	submittedCount := counts[assessment.StatusSubmitted]
	approvedCount := counts[assessment.StatusApproved]
	rejectedCount := counts[assessment.StatusRejected]
	total := draftCount + submittedCount + approvedCount + rejectedCount
	completed := submittedCount + approvedCount + rejectedCount

	overdueCount, err := s.AssessmentRepository.CountOverdueDrafts(ctx, cycle.ID, s.today())
	if err != nil {
		return assessment.CycleProgressResponse{}, err
	}

	progress := assessment.CycleProgressResponse{
		CycleID:              cycle.ID,
		TotalAssessments:     total,
		DraftCount:           draftCount,
		SubmittedCount:       submittedCount,
		ApprovedCount:        approvedCount,
		RejectedCount:        rejectedCount,
		OverdueCount:         overdueCount,
		CompletionPercentage: assessment.CompletionPercentage(completed, total),
	}

	avg, ok, err := s.AssessmentRepository.AverageSubmittedRating(ctx, cycle.ID)
	if err != nil {
		return assessment.CycleProgressResponse{}, err
	}
	if ok {
		formatted := fmt.Sprintf("%.2f", avg)
		progress.AverageRating = &formatted
	}

	return progress, nil
}
