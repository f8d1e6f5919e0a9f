package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByCode retrieves a student by permanent code, with the program attached.
func (r *StudentRepository) GetByCode(ctx context.Context, codePermanent string) (*models.Student, error) {
	query := `
		SELECT s.code_permanent, s.first_name, s.last_name, s.program_code, s.status,
		       p.code, p.label
		FROM students s
		JOIN programs p ON p.code = s.program_code
		WHERE s.code_permanent = $1
	`

	var student models.Student
	var program models.Program
	err := r.db.QueryRow(ctx, query, codePermanent).Scan(
		&student.CodePermanent,
		&student.FirstName,
		&student.LastName,
		&student.ProgramCode,
		&student.Status,
		&program.Code,
		&program.Label,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.Program = &program
	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT code_permanent, first_name, last_name, program_code, status
		FROM students
		ORDER BY code_permanent
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.CodePermanent,
			&student.FirstName,
			&student.LastName,
			&student.ProgramCode,
			&student.Status,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
