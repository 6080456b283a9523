package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/reminder"
)

// ReminderJobs wires the reminder sweeps into the scheduler. The sweeps
// themselves are idempotent (deduplicated per employee/day/type), so a
// generous interval with restarts in between is safe.
type ReminderJobs struct {
	reminderSvc reminder.Service
	location    *time.Location
}

func NewReminderJobs(reminderSvc reminder.Service, location *time.Location) *ReminderJobs {
	return &ReminderJobs{
		reminderSvc: reminderSvc,
		location:    location,
	}
}

func (j *ReminderJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("missing_clock_in_reminders", 30*time.Minute, j.MissingClockInReminders)
	scheduler.AddJob("break_over_limit_reminders", 10*time.Minute, j.BreakOverLimitReminders)
	scheduler.AddJob("assessment_deadline_reminders", 1*time.Hour, j.AssessmentDeadlineReminders)
}

// MissingClockInReminders runs mid-morning in company-local time; outside
// that window the sweep is a no-op.
func (j *ReminderJobs) MissingClockInReminders(ctx context.Context) error {
	hour := time.Now().In(j.location).Hour()
	if hour < 10 || hour > 11 {
		return nil
	}

	result, err := j.reminderSvc.SendMissingClockInReminders(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Missing clock-in sweep finished",
		"scanned", result.Scanned,
		"sent", result.Sent,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return nil
}

func (j *ReminderJobs) BreakOverLimitReminders(ctx context.Context) error {
	result, err := j.reminderSvc.SendBreakOverLimitReminders(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Break over-limit sweep finished",
		"scanned", result.Scanned,
		"sent", result.Sent,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return nil
}

// AssessmentDeadlineReminders runs once per local morning.
func (j *ReminderJobs) AssessmentDeadlineReminders(ctx context.Context) error {
	hour := time.Now().In(j.location).Hour()
	if hour != 9 {
		return nil
	}

	result, err := j.reminderSvc.SendAssessmentDeadlineReminders(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Assessment deadline sweep finished",
		"scanned", result.Scanned,
		"sent", result.Sent,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return nil
}
