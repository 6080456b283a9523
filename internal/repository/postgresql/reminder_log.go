package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/reminder"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type reminderLogRepository struct {
	db *database.DB
}

func NewReminderLogRepository(db *database.DB) reminder.LogRepository {
	return &reminderLogRepository{db: db}
}

// TryMarkSent implements reminder.LogRepository. The unique index on
// (employee_id, reminder_date, reminder_type) plus ON CONFLICT DO NOTHING
// makes the dedupe check and the claim a single atomic statement.
func (r *reminderLogRepository) TryMarkSent(ctx context.Context, employeeID, reminderType string, reminderDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reminder_logs (id, employee_id, reminder_type, reminder_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, reminder_date, reminder_type) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, uuid.New().String(), employeeID, reminderType, reminderDate)
	if err != nil {
		return false, fmt.Errorf("failed to record reminder log: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
