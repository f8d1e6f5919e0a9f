package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
)

// CourseFilter narrows course listing. Zero values disable a clause.
type CourseFilter struct {
	// Text is matched (case-insensitively) against title, department,
	// content and objectives, and as a sigle prefix.
	Text string
	// DepartmentPrefix is OR'd with the text clauses when set.
	DepartmentPrefix string
}

// CourseRepository handles database operations for the course catalog
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `sigle, title, credits, department, content, objectives, prerequisites`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.Sigle,
		&course.Title,
		&course.Credits,
		&course.Department,
		&course.Content,
		&course.Objectives,
		&course.Prerequisites,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetBySigle retrieves a course by its sigle
func (r *CourseRepository) GetBySigle(ctx context.Context, sigle string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE sigle = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, sigle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// List retrieves courses matching the filter, ordered by department then sigle.
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	var (
		clauses []string
		args    []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Text != "" {
		pattern := "%" + filter.Text + "%"
		p := arg(pattern)
		or := []string{
			"title ILIKE " + p,
			"department ILIKE " + p,
			"content ILIKE " + p,
			"objectives ILIKE " + p,
			"sigle ILIKE " + arg(filter.Text+"%"),
		}
		if filter.DepartmentPrefix != "" {
			or = append(or, "department = "+arg(filter.DepartmentPrefix))
		}
		clauses = append(clauses, "("+strings.Join(or, " OR ")+")")
	} else if filter.DepartmentPrefix != "" {
		clauses = append(clauses, "department = "+arg(filter.DepartmentPrefix))
	}

	query := `SELECT ` + courseColumns + ` FROM courses`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY department, sigle"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
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
