package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/database"
)

type competencyAssessmentRepository struct {
	db *database.DB
}

func NewCompetencyAssessmentRepository(db *database.DB) assessment.AssessmentRepository {
	return &competencyAssessmentRepository{db: db}
}

const assessmentColumns = `
	a.id, a.cycle_id, a.employee_id, a.competency_id, a.assessor_id,
	a.assessment_type, a.rating, a.comments, a.status,
	a.submitted_at, a.extended_deadline,
	a.approved_at, a.approved_by, a.rejected_at, a.rejected_by, a.rejection_reason,
	a.created_at, a.updated_at`

// scanAssessment expects assessmentColumns followed by the three joined
// name columns every read query selects.
func scanAssessment(row pgx.Row, a *assessment.Assessment) error {
	return row.Scan(
		&a.ID, &a.CycleID, &a.EmployeeID, &a.CompetencyID, &a.AssessorID,
		&a.AssessmentType, &a.Rating, &a.Comments, &a.Status,
		&a.SubmittedAt, &a.ExtendedDeadline,
		&a.ApprovedAt, &a.ApprovedBy, &a.RejectedAt, &a.RejectedBy, &a.RejectionReason,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.CompetencyName, &a.AssessorName,
	)
}

// Create implements assessment.AssessmentRepository.
func (r *competencyAssessmentRepository) Create(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO competency_assessments (
			cycle_id, employee_id, competency_id, assessor_id,
			assessment_type, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.CycleID,
		a.EmployeeID,
		a.CompetencyID,
		a.AssessorID,
		a.AssessmentType,
		a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return assessment.Assessment{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	return a, nil
}

// GetByID implements assessment.AssessmentRepository.
func (r *competencyAssessmentRepository) GetByID(ctx context.Context, id string) (assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + assessmentColumns + `,
			   e.full_name AS employee_name,
			   c.name AS competency_name,
			   ae.full_name AS assessor_name
		FROM competency_assessments a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN competencies c ON c.id = a.competency_id
		LEFT JOIN employees ae ON ae.id = a.assessor_id
		WHERE a.id = $1
	`

	var a assessment.Assessment
	err := scanAssessment(q.QueryRow(ctx, query, id), &a)

	if err != nil {
		if err == pgx.ErrNoRows {
			return assessment.Assessment{}, assessment.ErrAssessmentNotFound
		}
		return assessment.Assessment{}, fmt.Errorf("failed to get assessment by ID: %w", err)
	}

	return a, nil
}

// List implements assessment.AssessmentRepository.
func (r *competencyAssessmentRepository) List(ctx context.Context, filter assessment.AssessmentFilter) ([]assessment.Assessment, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.CycleID != nil && *filter.CycleID != "" {
		baseWhere += fmt.Sprintf(" AND a.cycle_id = $%d", argIdx)
		args = append(args, *filter.CycleID)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.AssessorID != nil && *filter.AssessorID != "" {
		baseWhere += fmt.Sprintf(" AND a.assessor_id = $%d", argIdx)
		args = append(args, *filter.AssessorID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.AssessmentType != nil && *filter.AssessmentType != "" {
		baseWhere += fmt.Sprintf(" AND a.assessment_type = $%d", argIdx)
		args = append(args, *filter.AssessmentType)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM competency_assessments a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count assessments: %w", err)
	}

	orderByField := "a.created_at"
	switch filter.SortBy {
	case "submitted_at":
		orderByField = "a.submitted_at"
	case "status":
		orderByField = "a.status"
	case "rating":
		orderByField = "a.rating"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+assessmentColumns+`,
			   e.full_name AS employee_name,
			   c.name AS competency_name,
			   ae.full_name AS assessor_name
		FROM competency_assessments a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN competencies c ON c.id = a.competency_id
		LEFT JOIN employees ae ON ae.id = a.assessor_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []assessment.Assessment
	for rows.Next() {
		var a assessment.Assessment
		if err := scanAssessment(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("failed to scan assessment: %w", err)
		}
		assessments = append(assessments, a)
	}

	return assessments, total, nil
}

// UpdateTransition implements assessment.AssessmentRepository. The WHERE
// status guard makes a lost race a zero-row update instead of a clobbered
// transition.
func (r *competencyAssessmentRepository) UpdateTransition(ctx context.Context, a assessment.Assessment, fromStatus string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE competency_assessments
		SET rating = $3,
			comments = $4,
			status = $5,
			submitted_at = $6,
			approved_at = $7,
			approved_by = $8,
			rejected_at = $9,
			rejected_by = $10,
			rejection_reason = $11,
			updated_at = NOW()
		WHERE id = $1
		  AND status = $2
	`

	tag, err := q.Exec(ctx, query,
		a.ID,
		fromStatus,
		a.Rating,
		a.Comments,
		a.Status,
		a.SubmittedAt,
		a.ApprovedAt,
		a.ApprovedBy,
		a.RejectedAt,
		a.RejectedBy,
		a.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update assessment transition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assessment.ErrAssessmentAlreadyProcessed
	}

	return nil
}

// UpdateDeadline implements assessment.AssessmentRepository. Only drafts can
// carry an extension; the guard mirrors the entity rule.
func (r *competencyAssessmentRepository) UpdateDeadline(ctx context.Context, id string, deadline time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE competency_assessments
		SET extended_deadline = $2,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'draft'
	`

	tag, err := q.Exec(ctx, query, id, deadline)
	if err != nil {
		return fmt.Errorf("failed to update assessment deadline: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assessment.ErrAssessmentNotDraft
	}

	return nil
}

// UpdateAssessor implements assessment.AssessmentRepository.
func (r *competencyAssessmentRepository) UpdateAssessor(ctx context.Context, id, assessorID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE competency_assessments
		SET assessor_id = $2,
			updated_at = NOW()
		WHERE id = $1
		  AND status NOT IN ('approved', 'rejected')
	`

	tag, err := q.Exec(ctx, query, id, assessorID)
	if err != nil {
		return fmt.Errorf("failed to update assessment assessor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assessment.ErrAssessmentAlreadyProcessed
	}

	return nil
}

// CountByStatus implements assessment.AssessmentRepository.
func (r *competencyAssessmentRepository) CountByStatus(ctx context.Context, cycleID string) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM competency_assessments
		WHERE cycle_id = $1
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assessments by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan assessment status count: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

// CountOverdueDrafts implements assessment.AssessmentRepository. The
// effective deadline is the extension when present, else the cycle end date.
func (r *competencyAssessmentRepository) CountOverdueDrafts(ctx context.Context, cycleID string, now time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM competency_assessments a
		JOIN assessment_cycles cy ON cy.id = a.cycle_id
		WHERE a.cycle_id = $1
		  AND a.status = 'draft'
		  AND COALESCE(a.extended_deadline, cy.end_date) < $2
	`

	var count int
	if err := q.QueryRow(ctx, query, cycleID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overdue drafts: %w", err)
	}

	return count, nil
}

// AverageSubmittedRating implements assessment.AssessmentRepository.
func (r *competencyAssessmentRepository) AverageSubmittedRating(ctx context.Context, cycleID string) (float64, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT AVG(rating)
		FROM competency_assessments
		WHERE cycle_id = $1
		  AND status IN ('submitted', 'approved', 'rejected')
		  AND rating IS NOT NULL
	`

	var avg *float64
	if err := q.QueryRow(ctx, query, cycleID).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("failed to average submitted ratings: %w", err)
	}
	if avg == nil {
		return 0, false, nil
	}

	return *avg, true, nil
}

// ListDueDrafts implements assessment.AssessmentRepository. Joins assessor
// contact data so the reminder sweep can mail without extra lookups.
func (r *competencyAssessmentRepository) ListDueDrafts(ctx context.Context, horizon time.Time) ([]assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + assessmentColumns + `,
			   e.full_name AS employee_name,
			   c.name AS competency_name,
			   ae.full_name AS assessor_name
		FROM competency_assessments a
		JOIN assessment_cycles cy ON cy.id = a.cycle_id
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN competencies c ON c.id = a.competency_id
		LEFT JOIN employees ae ON ae.id = a.assessor_id
		WHERE a.status = 'draft'
		  AND cy.status = 'active'
		  AND COALESCE(a.extended_deadline, cy.end_date) <= $1
		ORDER BY COALESCE(a.extended_deadline, cy.end_date) ASC
	`

	rows, err := q.Query(ctx, query, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to query due drafts: %w", err)
	}
	defer rows.Close()

	var assessments []assessment.Assessment
	for rows.Next() {
		var a assessment.Assessment
		if err := scanAssessment(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan due draft: %w", err)
		}
		assessments = append(assessments, a)
	}

	return assessments, nil
}
