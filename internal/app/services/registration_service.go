package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/app/repositories"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
	"github.com/marcotte/inscripto/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// RegistrationService runs the registration rule chain for each requested
// course and creates the enrollment rows that pass it. The chain is, in
// order: existence, program membership, offering-in-term, duplicate check,
// prerequisite satisfaction. Each course is validated independently and a
// failing rule short-circuits only that course; the batch never aborts on a
// rule failure.
type RegistrationService struct {
	courses     CourseStore
	curriculum  CurriculumStore
	offerings   OfferingStore
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	courses CourseStore,
	curriculum CurriculumStore,
	offerings OfferingStore,
	enrollments EnrollmentStore,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		courses:     courses,
		curriculum:  curriculum,
		offerings:   offerings,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Register processes a registration request. Courses are validated
// sequentially, so a sigle repeated within one request sees the enrollment
// its first occurrence created. Storage errors (as opposed to rule failures)
// abort the batch and propagate.
func (s *RegistrationService) Register(ctx context.Context, params dto.IntentParameters, studentCtx *dto.StudentContext) (*dto.BatchResult, error) {
	if studentCtx == nil || studentCtx.Student == nil {
		return nil, apperrors.ErrNoStudentContext
	}

	if len(params.Sigles) == 0 {
		return nil, fmt.Errorf("%w: aucun sigle de cours fourni", apperrors.ErrValidationFailed)
	}

	term, ok := helpers.NormalizeTerm(params.Term)
	if !ok {
		return nil, fmt.Errorf("%w: trimestre invalide ou manquant (%q)", apperrors.ErrValidationFailed, params.Term)
	}

	year := params.Year
	if year == 0 {
		year = helpers.TermYear(term)
	}

	student := studentCtx.Student
	batch := &dto.BatchResult{
		CodePermanent: student.CodePermanent,
		Term:          term,
	}

	for _, raw := range params.Sigles {
		sigle := helpers.NormalizeSigle(raw)
		result, err := s.registerOne(ctx, student, sigle, term, year)
		if err != nil {
			return nil, err
		}

		batch.Results = append(batch.Results, *result)
		if result.Success {
			batch.Succeeded++
		} else {
			batch.Failed++
		}
	}

	s.logger.Info().
		Str("codePermanent", student.CodePermanent).
		Str("term", term).
		Int("succeeded", batch.Succeeded).
		Int("failed", batch.Failed).
		Msg("Registration batch processed")

	return batch, nil
}

// registerOne runs the rule chain for a single course. Rule failures come
// back as a failed CourseResult; only storage errors are returned as errors.
func (s *RegistrationService) registerOne(ctx context.Context, student *models.Student, sigle, term string, year int) (*dto.CourseResult, error) {
	// Rule 1: the sigle must resolve to a catalog course.
	course, err := s.courses.GetBySigle(ctx, sigle)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return failure(sigle, dto.FailureCourseNotFound,
				fmt.Sprintf("Le cours %s est introuvable.", sigle)), nil
		}
		return nil, err
	}

	// Rule 2: the course must belong to the student's program.
	entry, err := s.curriculum.GetEntry(ctx, student.ProgramCode, sigle)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return failure(sigle, dto.FailureNotInProgram,
			fmt.Sprintf("Le cours %s ne fait pas partie de votre programme.", sigle)), nil
	}

	// Rule 3: the course must be offered in the requested term.
	offering, err := s.offerings.GetBySigleAndTerm(ctx, sigle, term)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return failure(sigle, dto.FailureNotOfferedThisTerm,
			fmt.Sprintf("Le cours %s n'est pas offert au trimestre %s.", sigle, term)), nil
	}

	// Rule 4: no active enrollment may already exist for this term.
	existing, err := s.enrollments.Find(ctx, repositories.EnrollmentFilter{
		CodePermanent: student.CodePermanent,
		Sigle:         sigle,
		Term:          term,
		Year:          year,
		Status:        models.StatusEnrolled,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return failure(sigle, dto.FailureAlreadyEnrolled,
			fmt.Sprintf("Vous êtes déjà inscrit à %s pour le trimestre %s.", sigle, term)), nil
	}

	// Rule 5: every prerequisite must be completed with a passing grade.
	missing, err := s.missingPrerequisites(ctx, student.CodePermanent, course)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		result := failure(sigle, dto.FailurePrerequisitesMissing,
			fmt.Sprintf("Préalables manquants pour %s : %s.", sigle, strings.Join(missing, ", ")))
		result.Missing = missing
		return result, nil
	}

	enrollment := &models.Enrollment{
		CodePermanent: student.CodePermanent,
		ProgramCode:   student.ProgramCode,
		NominalTerm:   entry.NominalTerm,
		Sigle:         sigle,
		Term:          term,
		Year:          year,
		Status:        models.StatusEnrolled,
	}

	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		// The partial unique index is the backstop for the duplicate rule:
		// losing the race to a concurrent request is still AlreadyEnrolled.
		if errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return failure(sigle, dto.FailureAlreadyEnrolled,
				fmt.Sprintf("Vous êtes déjà inscrit à %s pour le trimestre %s.", sigle, term)), nil
		}
		return nil, err
	}

	return &dto.CourseResult{
		Sigle:        sigle,
		Success:      true,
		Title:        course.Title,
		Credits:      course.Credits,
		Term:         term,
		EnrollmentID: enrollment.ID,
	}, nil
}

// missingPrerequisites returns the prerequisite sigles the student has not
// completed with a passing grade, in the order the course lists them.
func (s *RegistrationService) missingPrerequisites(ctx context.Context, codePermanent string, course *models.Course) ([]string, error) {
	required := helpers.ParseSigles(course.Prerequisites)
	if len(required) == 0 {
		return nil, nil
	}

	history, err := s.enrollments.Find(ctx, repositories.EnrollmentFilter{
		CodePermanent: codePermanent,
	})
	if err != nil {
		return nil, err
	}

	passed := make(map[string]bool, len(history))
	for _, enrollment := range history {
		if enrollment.Passed() {
			passed[enrollment.Sigle] = true
		}
	}

	var missing []string
	for _, sigle := range required {
		if !passed[sigle] {
			missing = append(missing, sigle)
		}
	}
	return missing, nil
}

func failure(sigle string, code dto.FailureCode, message string) *dto.CourseResult {
	return &dto.CourseResult{
		Sigle:   sigle,
		Success: false,
		Code:    code,
		Error:   message,
	}
}
