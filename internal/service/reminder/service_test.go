package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/employee"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/reminder"
)

type fakeLogRepo struct {
	alreadySent map[string]bool // employeeID -> a log row already exists
	claims      []string
}

func (f *fakeLogRepo) TryMarkSent(ctx context.Context, employeeID, reminderType string, reminderDate time.Time) (bool, error) {
	f.claims = append(f.claims, employeeID)
	return !f.alreadySent[employeeID], nil
}

type fakeEmployeeRepo struct {
	withoutSession []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.withoutSession {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.withoutSession, int64(len(f.withoutSession)), nil
}

func (f *fakeEmployeeRepo) ListActiveWithoutSession(ctx context.Context, workDate time.Time) ([]employee.Employee, error) {
	return f.withoutSession, nil
}

type fakeEmailService struct {
	sentTo  []string
	failFor map[string]bool // recipient email -> send fails
}

func (f *fakeEmailService) SendMissingClockInReminder(to, employeeName, workDate string) error {
	if f.failFor[to] {
		return errors.New("smtp connection refused")
	}
	f.sentTo = append(f.sentTo, to)
	return nil
}

func (f *fakeEmailService) SendBreakOverLimitReminder(to, employeeName string, breakNumber, durationMinutes, limitMinutes int) error {
	if f.failFor[to] {
		return errors.New("smtp connection refused")
	}
	f.sentTo = append(f.sentTo, to)
	return nil
}

func (f *fakeEmailService) SendAssessmentDeadlineReminder(to, assessorName, employeeName, assessmentType, deadline string, overdue bool) error {
	if f.failFor[to] {
		return errors.New("smtp connection refused")
	}
	f.sentTo = append(f.sentTo, to)
	return nil
}

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", FullName: "Ani Wijaya", Email: "ani@example.com"},
		{ID: "emp-2", FullName: "Budi Santoso", Email: "budi@example.com"},
		{ID: "emp-3", FullName: "Citra Lestari", Email: "citra@example.com"},
	}
}

func TestMissingClockInSweepSkipsAlreadySent(t *testing.T) {
	logRepo := &fakeLogRepo{alreadySent: map[string]bool{"emp-2": true}}
	emailSvc := &fakeEmailService{}
	svc := NewReminderService(
		nil, time.UTC, emailSvc, logRepo,
		&fakeEmployeeRepo{withoutSession: testEmployees()},
		nil, nil, nil,
	)

	result, err := svc.SendMissingClockInReminders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, reminder.SweepResult{Scanned: 3, Sent: 2, Skipped: 1}, result)
	// The deduplicated employee never receives a mail
	assert.NotContains(t, emailSvc.sentTo, "budi@example.com")
	// But the dedupe slot is still claimed before the send decision
	assert.Contains(t, logRepo.claims, "emp-2")
}

func TestMissingClockInSweepCountsFailuresAndContinues(t *testing.T) {
	logRepo := &fakeLogRepo{}
	emailSvc := &fakeEmailService{failFor: map[string]bool{"ani@example.com": true}}
	svc := NewReminderService(
		nil, time.UTC, emailSvc, logRepo,
		&fakeEmployeeRepo{withoutSession: testEmployees()},
		nil, nil, nil,
	)

	result, err := svc.SendMissingClockInReminders(context.Background())
	require.NoError(t, err)

	// One dead mailbox must not abort the remaining sends
	assert.Equal(t, reminder.SweepResult{Scanned: 3, Sent: 2, Failed: 1}, result)
	assert.Equal(t, []string{"budi@example.com", "citra@example.com"}, emailSvc.sentTo)
}

func TestMissingClockInSweepEmptyScan(t *testing.T) {
	svc := NewReminderService(
		nil, time.UTC, &fakeEmailService{}, &fakeLogRepo{},
		&fakeEmployeeRepo{}, nil, nil, nil,
	)

	result, err := svc.SendMissingClockInReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reminder.SweepResult{}, result)
}
