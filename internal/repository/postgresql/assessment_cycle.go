package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type assessmentCycleRepository struct {
	db *database.DB
}

func NewAssessmentCycleRepository(db *database.DB) assessment.CycleRepository {
	return &assessmentCycleRepository{db: db}
}

// Create implements assessment.CycleRepository.
func (r *assessmentCycleRepository) Create(ctx context.Context, cycle assessment.Cycle) (assessment.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assessment_cycles (
			name, description, start_date, end_date, status,
			assessment_types, target_employees, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cycle.Name,
		cycle.Description,
		cycle.StartDate,
		cycle.EndDate,
		cycle.Status,
		cycle.AssessmentTypes,
		cycle.TargetEmployees,
		cycle.CreatedBy,
	).Scan(&cycle.ID, &cycle.CreatedAt, &cycle.UpdatedAt)

	if err != nil {
		return assessment.Cycle{}, fmt.Errorf("failed to create assessment cycle: %w", err)
	}

	return cycle, nil
}

// GetByID implements assessment.CycleRepository.
func (r *assessmentCycleRepository) GetByID(ctx context.Context, id string) (assessment.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, start_date, end_date, status,
			   assessment_types, target_employees, created_by,
			   created_at, updated_at
		FROM assessment_cycles
		WHERE id = $1
	`

	var cycle assessment.Cycle
	err := q.QueryRow(ctx, query, id).Scan(
		&cycle.ID, &cycle.Name, &cycle.Description, &cycle.StartDate, &cycle.EndDate, &cycle.Status,
		&cycle.AssessmentTypes, &cycle.TargetEmployees, &cycle.CreatedBy,
		&cycle.CreatedAt, &cycle.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return assessment.Cycle{}, assessment.ErrCycleNotFound
		}
		return assessment.Cycle{}, fmt.Errorf("failed to get assessment cycle by ID: %w", err)
	}

	return cycle, nil
}

// List implements assessment.CycleRepository.
func (r *assessmentCycleRepository) List(ctx context.Context) ([]assessment.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, start_date, end_date, status,
			   assessment_types, target_employees, created_by,
			   created_at, updated_at
		FROM assessment_cycles
		ORDER BY start_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment cycles: %w", err)
	}
	defer rows.Close()

	var cycles []assessment.Cycle
	for rows.Next() {
		var cycle assessment.Cycle
		err := rows.Scan(
			&cycle.ID, &cycle.Name, &cycle.Description, &cycle.StartDate, &cycle.EndDate, &cycle.Status,
			&cycle.AssessmentTypes, &cycle.TargetEmployees, &cycle.CreatedBy,
			&cycle.CreatedAt, &cycle.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment cycle: %w", err)
		}
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}

// UpdateStatus implements assessment.CycleRepository. The WHERE status guard
// means a concurrent transition that already moved the row makes this one a
// zero-row update, surfaced as ErrCycleAlreadyProcessed.
func (r *assessmentCycleRepository) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assessment_cycles
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1
		  AND status = $2
	`

	tag, err := q.Exec(ctx, query, id, fromStatus, toStatus)
	if err != nil {
		return fmt.Errorf("failed to update assessment cycle status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assessment.ErrCycleAlreadyProcessed
	}

	return nil
}
