package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marcotte/inscripto/internal/app/models"
)

// CurriculumRepository handles database operations for curriculum entries
// (the program/course junction).
type CurriculumRepository struct {
	db *pgxpool.Pool
}

// NewCurriculumRepository creates a new curriculum repository
func NewCurriculumRepository(db *pgxpool.Pool) *CurriculumRepository {
	return &CurriculumRepository{
		db: db,
	}
}

// GetEntry retrieves the curriculum entry linking a program to a course.
// Returns (nil, nil) when the course is not part of the program.
func (r *CurriculumRepository) GetEntry(ctx context.Context, programCode, sigle string) (*models.CurriculumEntry, error) {
	query := `
		SELECT program_code, sigle, nominal_term
		FROM curriculum_entries
		WHERE program_code = $1 AND sigle = $2
	`

	var entry models.CurriculumEntry
	err := r.db.QueryRow(ctx, query, programCode, sigle).Scan(
		&entry.ProgramCode,
		&entry.Sigle,
		&entry.NominalTerm,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving curriculum entry: %w", err)
	}

	return &entry, nil
}

// ListCourses retrieves every course in a program's plan of study,
// ordered by nominal term then sigle.
func (r *CurriculumRepository) ListCourses(ctx context.Context, programCode string) ([]*models.Course, error) {
	query := `
		SELECT c.sigle, c.title, c.credits, c.department, c.content, c.objectives, c.prerequisites
		FROM curriculum_entries ce
		JOIN courses c ON c.sigle = ce.sigle
		WHERE ce.program_code = $1
		ORDER BY ce.nominal_term, c.sigle
	`

	rows, err := r.db.Query(ctx, query, programCode)
	if err != nil {
		return nil, fmt.Errorf("error listing curriculum courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
