package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
	"github.com/marcotte/inscripto/internal/pkg/dberrors"
)

// ActiveEnrollmentConstraint is the partial unique index guaranteeing at most
// one Enrolled row per (student, course, term, year). An insert that trips it
// means a concurrent request won the duplicate race.
const ActiveEnrollmentConstraint = "enrollments_active_unique"

// EnrollmentFilter narrows enrollment queries. Zero values disable a clause.
type EnrollmentFilter struct {
	CodePermanent string
	Sigle         string
	Term          string
	Year          int
	Status        models.EnrollmentStatus
}

// EnrollmentRepository handles database operations for enrollments,
// the one entity the agent mutates.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentColumns = `e.id, e.code_permanent, e.program_code, e.nominal_term, e.sigle,
	       e.term, e.year, e.status, e.created_at, e.grade`

// Find retrieves enrollments matching the filter, each joined to its course,
// ordered by creation time.
func (r *EnrollmentRepository) Find(ctx context.Context, filter EnrollmentFilter) ([]*models.Enrollment, error) {
	var (
		clauses []string
		args    []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CodePermanent != "" {
		clauses = append(clauses, "e.code_permanent = "+arg(filter.CodePermanent))
	}
	if filter.Sigle != "" {
		clauses = append(clauses, "e.sigle = "+arg(filter.Sigle))
	}
	if filter.Term != "" {
		clauses = append(clauses, "e.term = "+arg(filter.Term))
	}
	if filter.Year != 0 {
		clauses = append(clauses, "e.year = "+arg(filter.Year))
	}
	if filter.Status != "" {
		clauses = append(clauses, "e.status = "+arg(string(filter.Status)))
	}

	query := `
		SELECT ` + enrollmentColumns + `,
		       c.sigle, c.title, c.credits, c.department, c.content, c.objectives, c.prerequisites
		FROM enrollments e
		JOIN courses c ON c.sigle = e.sigle`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY e.created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var course models.Course
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.CodePermanent,
			&enrollment.ProgramCode,
			&enrollment.NominalTerm,
			&enrollment.Sigle,
			&enrollment.Term,
			&enrollment.Year,
			&enrollment.Status,
			&enrollment.CreatedAt,
			&enrollment.Grade,
			&course.Sigle,
			&course.Title,
			&course.Credits,
			&course.Department,
			&course.Content,
			&course.Objectives,
			&course.Prerequisites,
		); err != nil {
			return nil, err
		}
		enrollment.Course = &course
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Create inserts a new enrollment row and populates its ID and creation
// timestamp. A unique violation on the active-enrollment index is reported
// as ErrAlreadyEnrolled: the storage constraint is the backstop for the
// duplicate rule when two requests race.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (code_permanent, program_code, nominal_term, sigle, term, year, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.CodePermanent,
		enrollment.ProgramCode,
		enrollment.NominalTerm,
		enrollment.Sigle,
		enrollment.Term,
		enrollment.Year,
		string(enrollment.Status),
	).Scan(&enrollment.ID, &enrollment.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, ActiveEnrollmentConstraint) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// Delete removes an enrollment row by ID.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
