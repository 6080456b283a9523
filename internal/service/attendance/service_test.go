package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/attendance"
)

type fakeSessionRepo struct {
	sessions map[string]attendance.Session
	updated  *attendance.Session
}

func newFakeSessionRepo(sessions ...attendance.Session) *fakeSessionRepo {
	m := make(map[string]attendance.Session, len(sessions))
	for _, s := range sessions {
		m[s.ID] = s
	}
	return &fakeSessionRepo{sessions: m}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (attendance.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return attendance.Session{}, attendance.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Session, error) {
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID && s.WorkDate.Equal(workDate) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session attendance.Session) error {
	f.sessions[session.ID] = session
	f.updated = &session
	return nil
}

func (f *fakeSessionRepo) GetMySessions(ctx context.Context, employeeID string, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	return nil, 0, nil
}

func (f *fakeSessionRepo) List(ctx context.Context, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	return nil, 0, nil
}

func (f *fakeSessionRepo) ListOpenBreaks(ctx context.Context, workDate time.Time) ([]attendance.Session, error) {
	return nil, nil
}

func authedContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func managerContext(t *testing.T) context.Context {
	return authedContext(t, map[string]interface{}{
		"user_id":     "mgr-1",
		"employee_id": "emp-mgr",
		"role":        "manager",
		"type":        "access",
	})
}

func TestUpdateSessionClockOutClosesOpenBreak(t *testing.T) {
	clockIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	breakStart := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeSessionRepo(attendance.Session{
		ID:                "sess-1",
		EmployeeID:        "emp-1",
		WorkDate:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		ClockIn:           &clockIn,
		OnBreak:           true,
		CurrentBreakStart: &breakStart,
		Status:            attendance.StatusOnBreak,
	})
	svc := NewSessionService(nil, time.UTC, repo)

	clockOut := "2026-03-10 17:00:00"
	resp, err := svc.UpdateSession(managerContext(t), attendance.UpdateSessionRequest{
		ID:           "sess-1",
		ClockOutTime: &clockOut,
	})
	require.NoError(t, err)

	// The open break is closed at the corrected clock-out, never left running
	require.NotNil(t, repo.updated)
	saved := *repo.updated
	assert.False(t, saved.OnBreak)
	assert.Nil(t, saved.CurrentBreakStart)
	require.Len(t, saved.BreakSessions, 1)
	assert.Equal(t, 300, saved.BreakSessions[0].DurationMinutes)
	assert.Equal(t, attendance.StatusClockedOut, saved.Status)

	assert.False(t, resp.OnBreak)
	assert.Equal(t, attendance.StatusClockedOut, resp.Status)
	// 09:00-17:00 minus the 12:00-17:00 break
	assert.Equal(t, 180, resp.WorkMinutes)
	require.NotNil(t, saved.EditedBy)
	assert.Equal(t, "mgr-1", *saved.EditedBy)
}

func TestUpdateSessionRederivesStatusFromTimestamps(t *testing.T) {
	clockIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	repo := newFakeSessionRepo(attendance.Session{
		ID:         "sess-1",
		EmployeeID: "emp-1",
		WorkDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		ClockIn:    &clockIn,
		ClockOut:   &clockOut,
		Status:     attendance.StatusOnBreak, // stale cache from a bad edit
	})
	svc := NewSessionService(nil, time.UTC, repo)

	newClockIn := "2026-03-10 08:30:00"
	resp, err := svc.UpdateSession(managerContext(t), attendance.UpdateSessionRequest{
		ID:          "sess-1",
		ClockInTime: &newClockIn,
	})
	require.NoError(t, err)

	// Timestamps are ground truth: a closed session reads clocked_out
	assert.Equal(t, attendance.StatusClockedOut, resp.Status)
	assert.Equal(t, 510, resp.WorkMinutes)
}

func TestUpdateSessionUnknownID(t *testing.T) {
	svc := NewSessionService(nil, time.UTC, newFakeSessionRepo())

	_, err := svc.UpdateSession(managerContext(t), attendance.UpdateSessionRequest{ID: "missing"})
	assert.ErrorIs(t, err, attendance.ErrSessionNotFound)
}
