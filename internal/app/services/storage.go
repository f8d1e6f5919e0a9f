package services

import (
	"context"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/repositories"
)

// Storage ports consumed by the agent services. The pgx repositories satisfy
// them; tests substitute fakes.

// StudentStore looks up student records.
type StudentStore interface {
	GetByCode(ctx context.Context, codePermanent string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
}

// CourseStore reads the course catalog.
type CourseStore interface {
	GetBySigle(ctx context.Context, sigle string) (*models.Course, error)
	List(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error)
}

// CurriculumStore reads program plans of study.
type CurriculumStore interface {
	GetEntry(ctx context.Context, programCode, sigle string) (*models.CurriculumEntry, error)
	ListCourses(ctx context.Context, programCode string) ([]*models.Course, error)
}

// OfferingStore reads the course schedule.
type OfferingStore interface {
	GetBySigleAndTerm(ctx context.Context, sigle, term string) (*models.Offering, error)
	ListByTerm(ctx context.Context, term string) ([]*models.Offering, error)
}

// EnrollmentStore reads and mutates enrollment rows.
type EnrollmentStore interface {
	Find(ctx context.Context, filter repositories.EnrollmentFilter) ([]*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}
