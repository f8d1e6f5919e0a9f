package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/app/repositories"
	"github.com/marcotte/inscripto/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// departmentSynonyms maps common search words to a department code. The
// guess is only one of several OR'd filter clauses, never a hard filter.
var departmentSynonyms = map[string]string{
	"informatique":     "INF",
	"programmation":    "INF",
	"logiciel":         "INF",
	"computer science": "INF",
	"programming":      "INF",
	"mathématiques":    "MTH",
	"mathematiques":    "MTH",
	"math":             "MTH",
	"gestion":          "ADM",
	"administration":   "ADM",
	"comptabilité":     "CTB",
	"comptabilite":     "CTB",
}

// SearchService finds catalog courses by free-text criteria, optionally
// restricted to the offerings of one term.
type SearchService struct {
	courses   CourseStore
	offerings OfferingStore
	logger    zerolog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(courses CourseStore, offerings OfferingStore, logger zerolog.Logger) *SearchService {
	return &SearchService{
		courses:   courses,
		offerings: offerings,
		logger:    logger,
	}
}

// Search runs a course search. With a term, the offerings of that term are
// loaded first and the text criteria filter the joined courses, so each hit
// carries its schedule metadata. Without one, the criteria filter the whole
// catalog. An empty criteria string matches everything.
func (s *SearchService) Search(ctx context.Context, criteria, term string) (*dto.SearchResult, error) {
	criteria = strings.TrimSpace(criteria)
	deptGuess := guessDepartment(criteria)

	result := &dto.SearchResult{Criteria: criteria}

	if term != "" {
		normalized, ok := helpers.NormalizeTerm(term)
		if !ok {
			normalized = term
		}
		result.Term = normalized

		offerings, err := s.offerings.ListByTerm(ctx, normalized)
		if err != nil {
			return nil, fmt.Errorf("error searching offerings: %w", err)
		}

		for _, offering := range offerings {
			if offering.Course == nil || !matchCourse(offering.Course, criteria, deptGuess) {
				continue
			}
			result.Courses = append(result.Courses, dto.CourseMatch{
				Course:   *offering.Course,
				Offering: offering,
			})
		}
		return result, nil
	}

	courses, err := s.courses.List(ctx, repositories.CourseFilter{
		Text:             criteria,
		DepartmentPrefix: deptGuess,
	})
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}

	for _, course := range courses {
		result.Courses = append(result.Courses, dto.CourseMatch{Course: *course})
	}
	return result, nil
}

// GetCourse retrieves one catalog course by sigle.
func (s *SearchService) GetCourse(ctx context.Context, sigle string) (*models.Course, error) {
	return s.courses.GetBySigle(ctx, helpers.NormalizeSigle(sigle))
}

// ListOfferings retrieves the schedule of a term.
func (s *SearchService) ListOfferings(ctx context.Context, term string) ([]*models.Offering, error) {
	if normalized, ok := helpers.NormalizeTerm(term); ok {
		term = normalized
	}
	return s.offerings.ListByTerm(ctx, term)
}

// guessDepartment maps search words onto a department code, or "" when
// nothing matches.
func guessDepartment(criteria string) string {
	lowered := strings.ToLower(criteria)
	for word, dept := range departmentSynonyms {
		if strings.Contains(lowered, word) {
			return dept
		}
	}
	return ""
}

// matchCourse applies the text criteria to one course, mirroring the SQL
// clauses used on the no-term path: substring on title, department, content
// and objectives, sigle prefix, or the department guess.
func matchCourse(course *models.Course, criteria, deptGuess string) bool {
	if criteria == "" {
		return true
	}

	lowered := strings.ToLower(criteria)
	if strings.Contains(strings.ToLower(course.Title), lowered) ||
		strings.Contains(strings.ToLower(course.Department), lowered) ||
		strings.HasPrefix(strings.ToLower(course.Sigle), lowered) {
		return true
	}
	if course.Content != nil && strings.Contains(strings.ToLower(*course.Content), lowered) {
		return true
	}
	if course.Objectives != nil && strings.Contains(strings.ToLower(*course.Objectives), lowered) {
		return true
	}
	return deptGuess != "" && course.Department == deptGuess
}
