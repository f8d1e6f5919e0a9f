package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/app/repositories"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ContextService resolves the academic context of a student: the student
// record, the active enrollments joined to their courses, and the credit
// total. The context is rebuilt on every request; nothing is cached, so a
// request always observes the writes of the previous one.
type ContextService struct {
	students    StudentStore
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewContextService creates a new context service instance
func NewContextService(students StudentStore, enrollments EnrollmentStore, logger zerolog.Logger) *ContextService {
	return &ContextService{
		students:    students,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Resolve builds the StudentContext for a permanent code. An empty code, or a
// code matching no student, yields a nil context rather than an error: the
// pipeline degrades gracefully and downstream handlers decide whether they
// can work without one.
func (s *ContextService) Resolve(ctx context.Context, codePermanent string) (*dto.StudentContext, error) {
	if codePermanent == "" {
		return nil, nil
	}

	student, err := s.students.GetByCode(ctx, codePermanent)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Warn().Str("codePermanent", codePermanent).Msg("Unknown permanent code, proceeding without context")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving student context: %w", err)
	}

	active, err := s.enrollments.Find(ctx, repositories.EnrollmentFilter{
		CodePermanent: codePermanent,
		Status:        models.StatusEnrolled,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading active enrollments: %w", err)
	}

	studentCtx := &dto.StudentContext{
		Student:           student,
		Program:           student.Program,
		ActiveEnrollments: make([]dto.ActiveEnrollment, 0, len(active)),
	}

	for _, enrollment := range active {
		entry := dto.ActiveEnrollment{
			Enrollment: *enrollment,
			Sigle:      enrollment.Sigle,
		}
		if enrollment.Course != nil {
			entry.Title = enrollment.Course.Title
			entry.Credits = enrollment.Course.Credits
		}
		studentCtx.ActiveEnrollments = append(studentCtx.ActiveEnrollments, entry)
		studentCtx.TotalCredits += entry.Credits
	}

	return studentCtx, nil
}

// GetStudent retrieves a student record, without the enrollment aggregate.
func (s *ContextService) GetStudent(ctx context.Context, codePermanent string) (*models.Student, error) {
	if codePermanent == "" {
		return nil, fmt.Errorf("%w: permanent code is required", apperrors.ErrValidationFailed)
	}
	return s.students.GetByCode(ctx, codePermanent)
}

// ListStudents retrieves all student records.
func (s *ContextService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}
