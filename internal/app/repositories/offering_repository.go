package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marcotte/inscripto/internal/app/models"
)

// OfferingRepository handles database operations for course offerings
type OfferingRepository struct {
	db *pgxpool.Pool
}

// NewOfferingRepository creates a new offering repository
func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{
		db: db,
	}
}

// GetBySigleAndTerm retrieves the offering of a course in a given term.
// Returns (nil, nil) when the course is not offered that term.
func (r *OfferingRepository) GetBySigleAndTerm(ctx context.Context, sigle, term string) (*models.Offering, error) {
	query := `
		SELECT id, sigle, term, year, schedule, location, instructor
		FROM offerings
		WHERE sigle = $1 AND term = $2
		ORDER BY id
		LIMIT 1
	`

	var offering models.Offering
	err := r.db.QueryRow(ctx, query, sigle, term).Scan(
		&offering.ID,
		&offering.Sigle,
		&offering.Term,
		&offering.Year,
		&offering.Schedule,
		&offering.Location,
		&offering.Instructor,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving offering: %w", err)
	}

	return &offering, nil
}

// ListByTerm retrieves all offerings in a term, each joined to its course,
// ordered by department then sigle.
func (r *OfferingRepository) ListByTerm(ctx context.Context, term string) ([]*models.Offering, error) {
	query := `
		SELECT o.id, o.sigle, o.term, o.year, o.schedule, o.location, o.instructor,
		       c.sigle, c.title, c.credits, c.department, c.content, c.objectives, c.prerequisites
		FROM offerings o
		JOIN courses c ON c.sigle = o.sigle
		WHERE o.term = $1
		ORDER BY c.department, c.sigle
	`

	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("error listing offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*models.Offering
	for rows.Next() {
		var offering models.Offering
		var course models.Course
		if err := rows.Scan(
			&offering.ID,
			&offering.Sigle,
			&offering.Term,
			&offering.Year,
			&offering.Schedule,
			&offering.Location,
			&offering.Instructor,
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
		offering.Course = &course
		offerings = append(offerings, &offering)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}
