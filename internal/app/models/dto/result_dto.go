package dto

import "github.com/marcotte/inscripto/internal/app/models"

// FailureCode labels the business rule that rejected a course within a batch.
type FailureCode string

const (
	FailureCourseNotFound       FailureCode = "COURSE_NOT_FOUND"
	FailureNotInProgram         FailureCode = "NOT_IN_PROGRAM"
	FailureNotOfferedThisTerm   FailureCode = "NOT_OFFERED_THIS_TERM"
	FailureAlreadyEnrolled      FailureCode = "ALREADY_ENROLLED"
	FailurePrerequisitesMissing FailureCode = "PREREQUISITES_MISSING"
	FailureEnrollmentNotFound   FailureCode = "ENROLLMENT_NOT_FOUND"
	FailureAmbiguousEnrollment  FailureCode = "AMBIGUOUS_ENROLLMENT"
	FailureWindowExpired        FailureCode = "WITHDRAWAL_WINDOW_EXPIRED"
)

// CourseResult is the outcome of one course within a registration or
// withdrawal batch. Failures are data, not errors: the batch never aborts.
type CourseResult struct {
	Sigle        string      `json:"sigle"`
	Success      bool        `json:"success"`
	Code         FailureCode `json:"code,omitempty"`
	Error        string      `json:"error,omitempty"` // User-facing French message
	Title        string      `json:"title,omitempty"`
	Credits      float64     `json:"credits,omitempty"`
	Term         string      `json:"term,omitempty"`
	Missing      []string    `json:"missing,omitempty"` // Prerequisite sigles still required
	EnrollmentID int64       `json:"enrollmentId,omitempty"`
}

// BatchResult aggregates the per-course outcomes of a registration or
// withdrawal request.
type BatchResult struct {
	CodePermanent string         `json:"codePermanent"`
	Term          string         `json:"term,omitempty"`
	Results       []CourseResult `json:"results"`
	Succeeded     int            `json:"succeeded"`
	Failed        int            `json:"failed"`
}

// CourseMatch is one search hit, optionally annotated with schedule metadata
// when the search was restricted to a term.
type CourseMatch struct {
	Course   models.Course    `json:"course"`
	Offering *models.Offering `json:"offering,omitempty"`
}

// SearchResult is the outcome of a course search.
type SearchResult struct {
	Criteria string        `json:"criteria"`
	Term     string        `json:"term,omitempty"`
	Courses  []CourseMatch `json:"courses"`
}

// RecommendationResult lists suggested courses from the student's curriculum.
type RecommendationResult struct {
	ProgramLabel string          `json:"programLabel"`
	Courses      []models.Course `json:"courses"`
	Available    int             `json:"available"`
}
