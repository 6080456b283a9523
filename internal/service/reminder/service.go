package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/employee"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/reminder"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/email"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/workday"
)

// Drafts due within this many days are included in the deadline sweep,
// alongside anything already overdue.
const deadlineHorizonDays = 3

type ReminderServiceImpl struct {
	db       *database.DB
	location *time.Location
	emailSvc email.EmailService
	reminder.LogRepository
	employee.EmployeeRepository
	attendance.SessionRepository
	assessment.AssessmentRepository
	assessment.CycleRepository
}

func NewReminderService(
	db *database.DB,
	location *time.Location,
	emailSvc email.EmailService,
	logRepo reminder.LogRepository,
	employeeRepo employee.EmployeeRepository,
	sessionRepo attendance.SessionRepository,
	assessmentRepo assessment.AssessmentRepository,
	cycleRepo assessment.CycleRepository,
) reminder.Service {
	return &ReminderServiceImpl{
		db:                   db,
		location:             location,
		emailSvc:             emailSvc,
		LogRepository:        logRepo,
		EmployeeRepository:   employeeRepo,
		SessionRepository:    sessionRepo,
		AssessmentRepository: assessmentRepo,
		CycleRepository:      cycleRepo,
	}
}

func (s *ReminderServiceImpl) today() time.Time {
	return workday.Date(time.Now(), s.location)
}

// SendMissingClockInReminders implements reminder.Service. Each recipient is
// handled independently: a failed send is counted and logged, never fatal.
func (s *ReminderServiceImpl) SendMissingClockInReminders(ctx context.Context) (reminder.SweepResult, error) {
	workDate := s.today()

	employees, err := s.EmployeeRepository.ListActiveWithoutSession(ctx, workDate)
	if err != nil {
		return reminder.SweepResult{}, err
	}

	result := reminder.SweepResult{Scanned: len(employees)}
	for _, emp := range employees {
		fresh, err := s.LogRepository.TryMarkSent(ctx, emp.ID, reminder.TypeMissingClockIn, workDate)
		if err != nil {
			slog.Error("Reminder: failed to claim dedupe slot",
				"employee_id", emp.ID, "type", reminder.TypeMissingClockIn, "error", err)
			result.Failed++
			continue
		}
		if !fresh {
			result.Skipped++
			continue
		}

		if err := s.emailSvc.SendMissingClockInReminder(emp.Email, emp.FullName, workDate.Format("2006-01-02")); err != nil {
			slog.Error("Reminder: failed to send missing clock-in email",
				"employee_id", emp.ID, "error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	return result, nil
}

// SendBreakOverLimitReminders implements reminder.Service. Only breaks
// currently over their per-number limit are mailed.
func (s *ReminderServiceImpl) SendBreakOverLimitReminders(ctx context.Context) (reminder.SweepResult, error) {
	workDate := s.today()
	now := time.Now().UTC()

	sessions, err := s.SessionRepository.ListOpenBreaks(ctx, workDate)
	if err != nil {
		return reminder.SweepResult{}, err
	}

	result := reminder.SweepResult{Scanned: len(sessions)}
	for _, sess := range sessions {
		if sess.CurrentBreakStart == nil {
			continue
		}

		breakNumber := sess.CurrentBreakNumber()
		limit := attendance.BreakLimitMinutes(breakNumber)
		duration := int(now.Sub(*sess.CurrentBreakStart).Minutes())
		if duration <= limit {
			continue
		}

		fresh, err := s.LogRepository.TryMarkSent(ctx, sess.EmployeeID, reminder.TypeBreakOverLimit, workDate)
		if err != nil {
			slog.Error("Reminder: failed to claim dedupe slot",
				"employee_id", sess.EmployeeID, "type", reminder.TypeBreakOverLimit, "error", err)
			result.Failed++
			continue
		}
		if !fresh {
			result.Skipped++
			continue
		}

		emp, err := s.EmployeeRepository.GetByID(ctx, sess.EmployeeID)
		if err != nil {
			slog.Error("Reminder: failed to resolve employee for break reminder",
				"employee_id", sess.EmployeeID, "error", err)
			result.Failed++
			continue
		}

		if err := s.emailSvc.SendBreakOverLimitReminder(emp.Email, emp.FullName, breakNumber, duration, limit); err != nil {
			slog.Error("Reminder: failed to send break over-limit email",
				"employee_id", sess.EmployeeID, "error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	return result, nil
}

// SendAssessmentDeadlineReminders implements reminder.Service. The dedupe key
// is per assessor per day, so an assessor with several due drafts gets one
// mail about the earliest one.
func (s *ReminderServiceImpl) SendAssessmentDeadlineReminders(ctx context.Context) (reminder.SweepResult, error) {
	today := s.today()
	horizon := today.AddDate(0, 0, deadlineHorizonDays)

	drafts, err := s.AssessmentRepository.ListDueDrafts(ctx, horizon)
	if err != nil {
		return reminder.SweepResult{}, err
	}

	cycleEnds := map[string]time.Time{}

	result := reminder.SweepResult{Scanned: len(drafts)}
	for _, a := range drafts {
		cycleEnd, ok := cycleEnds[a.CycleID]
		if !ok {
			cycle, err := s.CycleRepository.GetByID(ctx, a.CycleID)
			if err != nil {
				slog.Error("Reminder: failed to resolve cycle for deadline reminder",
					"assessment_id", a.ID, "cycle_id", a.CycleID, "error", err)
				result.Failed++
				continue
			}
			cycleEnd = cycle.EndDate
			cycleEnds[a.CycleID] = cycleEnd
		}

		fresh, err := s.LogRepository.TryMarkSent(ctx, a.AssessorID, reminder.TypeAssessmentDeadline, today)
		if err != nil {
			slog.Error("Reminder: failed to claim dedupe slot",
				"employee_id", a.AssessorID, "type", reminder.TypeAssessmentDeadline, "error", err)
			result.Failed++
			continue
		}
		if !fresh {
			result.Skipped++
			continue
		}

		assessor, err := s.EmployeeRepository.GetByID(ctx, a.AssessorID)
		if err != nil {
			slog.Error("Reminder: failed to resolve assessor for deadline reminder",
				"assessment_id", a.ID, "assessor_id", a.AssessorID, "error", err)
			result.Failed++
			continue
		}

		employeeName := a.EmployeeID
		if a.EmployeeName != nil {
			employeeName = *a.EmployeeName
		}
		deadline := a.EffectiveDeadline(cycleEnd)

		err = s.emailSvc.SendAssessmentDeadlineReminder(
			assessor.Email,
			assessor.FullName,
			employeeName,
			a.AssessmentType,
			deadline.Format("2006-01-02"),
			a.IsOverdue(today, cycleEnd),
		)
		if err != nil {
			slog.Error("Reminder: failed to send assessment deadline email",
				"assessment_id", a.ID, "assessor_id", a.AssessorID, "error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	return result, nil
}
