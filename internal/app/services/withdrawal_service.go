package services

import (
	"context"
	"fmt"
	"time"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/app/repositories"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
	"github.com/marcotte/inscripto/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// WithdrawalWindowDays is the number of days after enrollment creation during
// which a withdrawal is still allowed. The boundary is inclusive: a
// withdrawal exactly 30 days in is accepted.
const WithdrawalWindowDays = 30

// WithdrawalService removes active enrollments. For each requested course it
// locates the matching Enrolled row, applies the withdrawal-window rule, and
// deletes the row. When several rows match and no term disambiguates them,
// the course fails with an ambiguity message instead of silently deleting
// one of them.
type WithdrawalService struct {
	enrollments EnrollmentStore
	logger      zerolog.Logger
	now         func() time.Time
}

// NewWithdrawalService creates a new withdrawal service instance
func NewWithdrawalService(enrollments EnrollmentStore, logger zerolog.Logger) *WithdrawalService {
	return &WithdrawalService{
		enrollments: enrollments,
		logger:      logger,
		now:         time.Now,
	}
}

// Withdraw processes a withdrawal request, one course at a time. Rule
// failures are recorded per course; storage errors abort the batch.
func (s *WithdrawalService) Withdraw(ctx context.Context, params dto.IntentParameters, studentCtx *dto.StudentContext) (*dto.BatchResult, error) {
	if studentCtx == nil || studentCtx.Student == nil {
		return nil, apperrors.ErrNoStudentContext
	}

	if len(params.Sigles) == 0 {
		return nil, fmt.Errorf("%w: aucun sigle de cours fourni", apperrors.ErrValidationFailed)
	}

	// The term is optional here: without it, a single active enrollment for
	// the course is unambiguous.
	term := ""
	if params.Term != "" {
		if normalized, ok := helpers.NormalizeTerm(params.Term); ok {
			term = normalized
		}
	}

	student := studentCtx.Student
	batch := &dto.BatchResult{
		CodePermanent: student.CodePermanent,
		Term:          term,
	}

	for _, raw := range params.Sigles {
		sigle := helpers.NormalizeSigle(raw)
		result, err := s.withdrawOne(ctx, student.CodePermanent, sigle, term, params.Year)
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
		Int("succeeded", batch.Succeeded).
		Int("failed", batch.Failed).
		Msg("Withdrawal batch processed")

	return batch, nil
}

func (s *WithdrawalService) withdrawOne(ctx context.Context, codePermanent, sigle, term string, year int) (*dto.CourseResult, error) {
	matches, err := s.enrollments.Find(ctx, repositories.EnrollmentFilter{
		CodePermanent: codePermanent,
		Sigle:         sigle,
		Status:        models.StatusEnrolled,
	})
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return failure(sigle, dto.FailureEnrollmentNotFound,
			fmt.Sprintf("Aucune inscription active trouvée pour %s.", sigle)), nil
	}

	target, result := s.selectEnrollment(matches, sigle, term, year)
	if result != nil {
		return result, nil
	}

	elapsed := helpers.DaysSince(target.CreatedAt, s.now())
	if elapsed > WithdrawalWindowDays {
		return failure(sigle, dto.FailureWindowExpired,
			fmt.Sprintf("La période de désinscription de %d jours est expirée pour %s.", WithdrawalWindowDays, sigle)), nil
	}

	if err := s.enrollments.Delete(ctx, target.ID); err != nil {
		return nil, err
	}

	success := &dto.CourseResult{
		Sigle:   sigle,
		Success: true,
		Term:    target.Term,
	}
	if target.Course != nil {
		success.Title = target.Course.Title
		success.Credits = target.Course.Credits
	}
	return success, nil
}

// selectEnrollment picks the enrollment to delete among the active matches.
// With a term, only the exact term (and year, when given) match qualifies.
// Without one, a single match is required; anything else is ambiguous.
func (s *WithdrawalService) selectEnrollment(matches []*models.Enrollment, sigle, term string, year int) (*models.Enrollment, *dto.CourseResult) {
	if term == "" {
		if len(matches) == 1 {
			return matches[0], nil
		}
		return nil, failure(sigle, dto.FailureAmbiguousEnrollment,
			fmt.Sprintf("Plusieurs inscriptions actives pour %s; précisez le trimestre.", sigle))
	}

	var exact []*models.Enrollment
	for _, m := range matches {
		if m.Term == term && (year == 0 || m.Year == year) {
			exact = append(exact, m)
		}
	}

	switch len(exact) {
	case 1:
		return exact[0], nil
	case 0:
		return nil, failure(sigle, dto.FailureEnrollmentNotFound,
			fmt.Sprintf("Aucune inscription active trouvée pour %s au trimestre %s.", sigle, term))
	default:
		return nil, failure(sigle, dto.FailureAmbiguousEnrollment,
			fmt.Sprintf("Plusieurs inscriptions actives pour %s; précisez l'année.", sigle))
	}
}
