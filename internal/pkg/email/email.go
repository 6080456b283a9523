package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/workstream-hr/workforce-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending reminder emails
type EmailService interface {
	SendMissingClockInReminder(to, employeeName, workDate string) error
	SendBreakOverLimitReminder(to, employeeName string, breakNumber, durationMinutes, limitMinutes int) error
	SendAssessmentDeadlineReminder(to, assessorName, employeeName, assessmentType, deadline string, overdue bool) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type missingClockInEmailData struct {
	EmployeeName string
	WorkDate     string
}

// SendMissingClockInReminder nudges an employee who has not clocked in today
func (s *emailServiceImpl) SendMissingClockInReminder(to, employeeName, workDate string) error {
	data := missingClockInEmailData{
		EmployeeName: employeeName,
		WorkDate:     workDate,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "missing_clock_in.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Reminder: You Haven't Clocked In Today", body.String())
}

type breakOverLimitEmailData struct {
	EmployeeName    string
	BreakNumber     int
	DurationMinutes int
	LimitMinutes    int
	OverMinutes     int
}

// SendBreakOverLimitReminder tells an employee their current break has run
// past its limit
func (s *emailServiceImpl) SendBreakOverLimitReminder(to, employeeName string, breakNumber, durationMinutes, limitMinutes int) error {
	data := breakOverLimitEmailData{
		EmployeeName:    employeeName,
		BreakNumber:     breakNumber,
		DurationMinutes: durationMinutes,
		LimitMinutes:    limitMinutes,
		OverMinutes:     durationMinutes - limitMinutes,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "break_over_limit.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Reminder: Your Break Has Exceeded Its Limit", body.String())
}

type assessmentDeadlineEmailData struct {
	AssessorName   string
	EmployeeName   string
	AssessmentType string
	Deadline       string
	Overdue        bool
}

// SendAssessmentDeadlineReminder tells an assessor a draft assessment is due
// soon or already overdue
func (s *emailServiceImpl) SendAssessmentDeadlineReminder(to, assessorName, employeeName, assessmentType, deadline string, overdue bool) error {
	data := assessmentDeadlineEmailData{
		AssessorName:   assessorName,
		EmployeeName:   employeeName,
		AssessmentType: assessmentType,
		Deadline:       deadline,
		Overdue:        overdue,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "assessment_deadline.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := "Reminder: Assessment Due Soon"
	if overdue {
		subject = "Reminder: Assessment Overdue"
	}

	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
