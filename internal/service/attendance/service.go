package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/workday"
)

type SessionServiceImpl struct {
	db       *database.DB
	location *time.Location
	attendance.SessionRepository
}

func NewSessionService(db *database.DB, location *time.Location, sessionRepo attendance.SessionRepository) attendance.SessionService {
	return &SessionServiceImpl{
		db:                db,
		location:          location,
		SessionRepository: sessionRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
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

// workDate buckets a UTC instant into the company-local work day.
func (s *SessionServiceImpl) workDate(now time.Time) time.Time {
	return workday.Date(now, s.location)
}

func (s *SessionServiceImpl) toSessionResponse(sess attendance.Session, now time.Time) attendance.SessionResponse {
	breaks := make([]attendance.BreakSessionResponse, 0, len(sess.BreakSessions))
	for _, b := range sess.BreakSessions {
		breaks = append(breaks, attendance.BreakSessionResponse{
			Start:           b.Start.Format("2006-01-02 15:04:05"),
			End:             b.End.Format("2006-01-02 15:04:05"),
			DurationMinutes: b.DurationMinutes,
		})
	}

	return attendance.SessionResponse{
		ID:                sess.ID,
		EmployeeID:        sess.EmployeeID,
		EmployeeName:      sess.EmployeeName,
		Department:        sess.Department,
		WorkDate:          sess.WorkDate.Format("2006-01-02"),
		ClockInTime:       timePtrToString(sess.ClockIn),
		ClockOutTime:      timePtrToString(sess.ClockOut),
		OnBreak:           sess.OnBreak,
		CurrentBreakStart: timePtrToString(sess.CurrentBreakStart),
		BreakSessions:     breaks,
		TotalBreakMinutes: sess.BreakMinutes(now),
		WorkMinutes:       sess.WorkMinutes(now),
		SessionDuration:   sess.CurrentSessionDuration(now),
		Status:            sess.Status,
		EditedBy:          sess.EditedBy,
	}
}

// ClockIn implements attendance.SessionService.
func (s *SessionServiceImpl) ClockIn(ctx context.Context) (attendance.ClockActionResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ClockActionResponse{}, err
	}

	nowUTC := time.Now().UTC()
	workDate := s.workDate(nowUTC)

	existing, err := s.SessionRepository.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		return attendance.ClockActionResponse{}, fmt.Errorf("failed to check today's session: %w", err)
	}
	if existing != nil {
		return attendance.ClockActionResponse{}, attendance.ErrAlreadyClockedIn
	}

	clockIn := nowUTC
	data := attendance.Session{
		EmployeeID:    employeeID,
		WorkDate:      workDate,
		ClockIn:       &clockIn,
		BreakSessions: attendance.BreakSessions{},
		Status:        attendance.StatusClockedIn,
	}

	// The unique (employee_id, work_date) index closes the race between the
	// existence check above and this insert.
	created, err := s.SessionRepository.Create(ctx, data)
	if err != nil {
		return attendance.ClockActionResponse{}, err
	}

	resp := s.toSessionResponse(created, nowUTC)
	return attendance.ClockActionResponse{Success: true, Session: &resp}, nil
}

// ClockOut implements attendance.SessionService.
func (s *SessionServiceImpl) ClockOut(ctx context.Context) (attendance.ClockActionResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ClockActionResponse{}, err
	}

	nowUTC := time.Now().UTC()
	workDate := s.workDate(nowUTC)

	sess, err := s.SessionRepository.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		return attendance.ClockActionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}
	if sess == nil {
		return attendance.ClockActionResponse{}, attendance.ErrNotClockedIn
	}

	if !sess.CompleteClockOut(nowUTC) {
		return attendance.ClockActionResponse{}, attendance.ErrAlreadyClockedOut
	}

	if err := s.SessionRepository.Update(ctx, *sess); err != nil {
		return attendance.ClockActionResponse{}, fmt.Errorf("failed to save clock-out: %w", err)
	}

	resp := s.toSessionResponse(*sess, nowUTC)
	return attendance.ClockActionResponse{Success: true, Session: &resp}, nil
}

// StartBreak implements attendance.SessionService. A double start is not an
// error: the response carries Success=false and the unchanged session.
func (s *SessionServiceImpl) StartBreak(ctx context.Context) (attendance.BreakActionResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.BreakActionResponse{}, err
	}

	nowUTC := time.Now().UTC()
	workDate := s.workDate(nowUTC)

	sess, err := s.SessionRepository.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		return attendance.BreakActionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}
	if sess == nil {
		return attendance.BreakActionResponse{}, attendance.ErrNotClockedIn
	}

	if !sess.StartBreak(nowUTC) {
		resp := s.toSessionResponse(*sess, nowUTC)
		return attendance.BreakActionResponse{
			Success:       false,
			BreakSessions: resp.BreakSessions,
			Session:       &resp,
		}, nil
	}

	if err := s.SessionRepository.Update(ctx, *sess); err != nil {
		return attendance.BreakActionResponse{}, fmt.Errorf("failed to save break start: %w", err)
	}

	resp := s.toSessionResponse(*sess, nowUTC)
	return attendance.BreakActionResponse{
		Success:       true,
		BreakSessions: resp.BreakSessions,
		Session:       &resp,
	}, nil
}

// EndBreak implements attendance.SessionService.
func (s *SessionServiceImpl) EndBreak(ctx context.Context) (attendance.BreakActionResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.BreakActionResponse{}, err
	}

	nowUTC := time.Now().UTC()
	workDate := s.workDate(nowUTC)

	sess, err := s.SessionRepository.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		return attendance.BreakActionResponse{}, fmt.Errorf("failed to get today's session: %w", err)
	}
	if sess == nil {
		return attendance.BreakActionResponse{}, attendance.ErrNotClockedIn
	}

	if !sess.EndBreak(nowUTC) {
		resp := s.toSessionResponse(*sess, nowUTC)
		return attendance.BreakActionResponse{
			Success:       false,
			BreakSessions: resp.BreakSessions,
			Session:       &resp,
		}, nil
	}

	if err := s.SessionRepository.Update(ctx, *sess); err != nil {
		return attendance.BreakActionResponse{}, fmt.Errorf("failed to save break end: %w", err)
	}

	resp := s.toSessionResponse(*sess, nowUTC)
	return attendance.BreakActionResponse{
		Success:       true,
		BreakSessions: resp.BreakSessions,
		Session:       &resp,
	}, nil
}

// GetMySessions implements attendance.SessionService.
func (s *SessionServiceImpl) GetMySessions(ctx context.Context, filter attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	sessions, total, err := s.SessionRepository.GetMySessions(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListSessionsResponse{}, fmt.Errorf("failed to list my sessions: %w", err)
	}

	return s.toListResponse(sessions, total, filter), nil
}

// ListSessions implements attendance.SessionService.
func (s *SessionServiceImpl) ListSessions(ctx context.Context, filter attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	sessions, total, err := s.SessionRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListSessionsResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	return s.toListResponse(sessions, total, filter), nil
}

func (s *SessionServiceImpl) toListResponse(sessions []attendance.Session, total int64, filter attendance.SessionFilter) attendance.ListSessionsResponse {
	now := time.Now().UTC()

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		responses = append(responses, s.toSessionResponse(sess, now))
	}

	return attendance.ListSessionsResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Showing:    fmt.Sprintf("%d of %d", len(responses), total),
		Sessions:   responses,
	}
}

// GetSession implements attendance.SessionService.
func (s *SessionServiceImpl) GetSession(ctx context.Context, id string) (attendance.SessionResponse, error) {
	sess, err := s.SessionRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return s.toSessionResponse(sess, time.Now().UTC()), nil
}

// UpdateSession implements attendance.SessionService. Corrections recompute
// derived state from the edited timestamps; an inconsistent correction is
// rendered as zero work rather than rejected.
func (s *SessionServiceImpl) UpdateSession(ctx context.Context, req attendance.UpdateSessionRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	sess, err := s.SessionRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	if req.ClockInTime != nil && *req.ClockInTime != "" {
		clockIn, err := time.Parse("2006-01-02 15:04:05", *req.ClockInTime)
		if err != nil {
			return attendance.SessionResponse{}, fmt.Errorf("invalid clock_in_time: %w", err)
		}
		utc := clockIn.UTC()
		sess.ClockIn = &utc
	}
	if req.ClockOutTime != nil && *req.ClockOutTime != "" {
		clockOut, err := time.Parse("2006-01-02 15:04:05", *req.ClockOutTime)
		if err != nil {
			return attendance.SessionResponse{}, fmt.Errorf("invalid clock_out_time: %w", err)
		}
		utc := clockOut.UTC()
		sess.ClockOut = &utc
	}

	// A corrected clock-out must not leave a break running past it; close
	// the open break the same way a normal clock-out does
	if sess.ClockOut != nil && sess.OnBreak {
		sess.EndBreak(*sess.ClockOut)
	}

	if req.Status != nil && *req.Status != "" {
		sess.Status = *req.Status
	} else {
		// Rederive the status cache from the edited timestamps
		switch {
		case sess.ClockOut != nil:
			sess.Status = attendance.StatusClockedOut
		case sess.OnBreak:
			sess.Status = attendance.StatusOnBreak
		default:
			sess.Status = attendance.StatusClockedIn
		}
	}

	sess.EditedBy = &userID

	if err := s.SessionRepository.Update(ctx, sess); err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to save session correction: %w", err)
	}

	return s.toSessionResponse(sess, time.Now().UTC()), nil
}
