package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/leave"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
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

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toLeaveRequestResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:              req.ID,
		EmployeeID:      req.EmployeeID,
		EmployeeName:    req.EmployeeName,
		LeaveTypeName:   req.LeaveTypeName,
		StartDate:       req.StartDate.Format("2006-01-02"),
		EndDate:         req.EndDate.Format("2006-01-02"),
		TotalDays:       req.TotalDays(),
		Reason:          req.Reason,
		Status:          string(req.Status),
		ApprovedBy:      req.ApprovedBy,
		ApprovedAt:      timePtrToString(req.ApprovedAt),
		RejectionReason: req.RejectionReason,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:    employeeID,
		LeaveTypeName: req.LeaveTypeName,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
		Status:        leave.RequestStatusWaitingApproval,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(created), nil
}

// ApproveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	req, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !req.Approve(time.Now().UTC(), userID) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.UpdateTransition(ctx, req); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(req), nil
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, rejectReq leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := rejectReq.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	req, err := s.LeaveRequestRepository.GetByID(ctx, rejectReq.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !req.Reject(time.Now().UTC(), userID, rejectReq.Reason) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.LeaveRequestRepository.UpdateTransition(ctx, req); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(req), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toLeaveRequestResponse(req))
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	return leave.ListLeaveRequestsResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Requests:   responses,
	}, nil
}
