package report

import (
	"context"
	"fmt"
	"time"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/employee"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/report"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/workday"
)

type ReportServiceImpl struct {
	db       *database.DB
	location *time.Location
	employee.EmployeeRepository
	attendance.SessionRepository
}

func NewReportService(
	db *database.DB,
	location *time.Location,
	employeeRepo employee.EmployeeRepository,
	sessionRepo attendance.SessionRepository,
) report.ReportService {
	return &ReportServiceImpl{
		db:                 db,
		location:           location,
		EmployeeRepository: employeeRepo,
		SessionRepository:  sessionRepo,
	}
}

func (s *ReportServiceImpl) today() time.Time {
	return workday.Date(time.Now(), s.location)
}

// MissingClockIns implements report.ReportService.
func (s *ReportServiceImpl) MissingClockIns(ctx context.Context, req report.MissingClockInRequest) (report.MissingClockInReport, error) {
	if err := req.Validate(); err != nil {
		return report.MissingClockInReport{}, err
	}

	workDate := s.today()
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return report.MissingClockInReport{}, fmt.Errorf("invalid date: %w", err)
		}
		workDate = parsed
	}

	employees, err := s.EmployeeRepository.ListActiveWithoutSession(ctx, workDate)
	if err != nil {
		return report.MissingClockInReport{}, err
	}

	rows := make([]report.MissingClockInRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, report.MissingClockInRow{
			EmployeeID: emp.ID,
			Name:       emp.FullName,
			Department: emp.Department,
			Email:      emp.Email,
		})
	}

	return report.MissingClockInReport{
		Date:        workDate.Format("2006-01-02"),
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
		TotalCount:  len(rows),
		Rows:        rows,
	}, nil
}

// BreakViolations implements report.ReportService. A violation is an open
// break whose elapsed time exceeds the limit for its break number; closed
// breaks are history, not violations.
func (s *ReportServiceImpl) BreakViolations(ctx context.Context) (report.BreakViolationReport, error) {
	workDate := s.today()
	now := time.Now().UTC()

	sessions, err := s.SessionRepository.ListOpenBreaks(ctx, workDate)
	if err != nil {
		return report.BreakViolationReport{}, err
	}

	rows := make([]report.BreakViolationRow, 0)
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

		row := report.BreakViolationRow{
			EmployeeID:      sess.EmployeeID,
			BreakNumber:     breakNumber,
			DurationMinutes: duration,
			LimitMinutes:    limit,
			OvertimeMinutes: duration - limit,
			BreakStart:      sess.CurrentBreakStart.Format("2006-01-02 15:04:05"),
		}
		if sess.EmployeeName != nil {
			row.EmployeeName = *sess.EmployeeName
		}
		if sess.Department != nil {
			row.Department = *sess.Department
		}
		rows = append(rows, row)
	}

	return report.BreakViolationReport{
		Date:        workDate.Format("2006-01-02"),
		GeneratedAt: now.Format("2006-01-02 15:04:05"),
		TotalCount:  len(rows),
		Rows:        rows,
	}, nil
}
