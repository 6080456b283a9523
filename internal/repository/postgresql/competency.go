package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type competencyRepository struct {
	db *database.DB
}

func NewCompetencyRepository(db *database.DB) assessment.CompetencyRepository {
	return &competencyRepository{db: db}
}

// GetByID implements assessment.CompetencyRepository.
func (r *competencyRepository) GetByID(ctx context.Context, id string) (assessment.Competency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, weight, created_at, updated_at
		FROM competencies
		WHERE id = $1
	`

	var c assessment.Competency
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Category, &c.Weight, &c.CreatedAt, &c.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return assessment.Competency{}, assessment.ErrCompetencyNotFound
		}
		return assessment.Competency{}, fmt.Errorf("failed to get competency by ID: %w", err)
	}

	return c, nil
}

// List implements assessment.CompetencyRepository.
func (r *competencyRepository) List(ctx context.Context) ([]assessment.Competency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, weight, created_at, updated_at
		FROM competencies
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query competencies: %w", err)
	}
	defer rows.Close()

	var competencies []assessment.Competency
	for rows.Next() {
		var c assessment.Competency
		if err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.Weight, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan competency: %w", err)
		}
		competencies = append(competencies, c)
	}

	return competencies, nil
}
