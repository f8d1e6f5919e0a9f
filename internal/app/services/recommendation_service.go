package services

import (
	"context"
	"fmt"

	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// DefaultRecommendationCount is used when the request does not say how many
// courses to suggest.
const DefaultRecommendationCount = 4

// RecommendationService suggests courses from the student's plan of study.
// The policy is deliberately naive: the first N curriculum courses, with no
// ranking by prerequisite readiness or term availability. A real ranking
// function is a future extension.
type RecommendationService struct {
	curriculum CurriculumStore
	logger     zerolog.Logger
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(curriculum CurriculumStore, logger zerolog.Logger) *RecommendationService {
	return &RecommendationService{
		curriculum: curriculum,
		logger:     logger,
	}
}

// Recommend returns up to count courses from the student's program.
func (s *RecommendationService) Recommend(ctx context.Context, count int, studentCtx *dto.StudentContext) (*dto.RecommendationResult, error) {
	if studentCtx == nil || studentCtx.Student == nil {
		return nil, apperrors.ErrNoStudentContext
	}

	if count <= 0 {
		count = DefaultRecommendationCount
	}

	courses, err := s.curriculum.ListCourses(ctx, studentCtx.Student.ProgramCode)
	if err != nil {
		return nil, fmt.Errorf("error loading curriculum courses: %w", err)
	}

	result := &dto.RecommendationResult{
		Available: len(courses),
	}
	if studentCtx.Program != nil {
		result.ProgramLabel = studentCtx.Program.Label
	}

	for _, course := range courses {
		if len(result.Courses) == count {
			break
		}
		result.Courses = append(result.Courses, *course)
	}

	return result, nil
}
