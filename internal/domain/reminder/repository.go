package reminder

import (
	"context"
	"time"
)

// LogRepository defines data access for the reminder dedupe log.
type LogRepository interface {
	// TryMarkSent inserts a log row for (employeeID, reminderDate,
	// reminderType). Returns false when a row already exists, meaning this
	// reminder was already sent and must be skipped.
	TryMarkSent(ctx context.Context, employeeID, reminderType string, reminderDate time.Time) (bool, error)
}
