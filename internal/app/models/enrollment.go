package models

import "time"

// Enrollment is the one entity the agent mutates: a student's registration
// to a course for a given term and year. At most one Enrolled row may exist
// per (student, sigle, term, year); the registration rule chain enforces it
// and a partial unique index in storage backs it up.
type Enrollment struct {
	ID            int64            `json:"id" db:"id"`
	CodePermanent string           `json:"codePermanent" db:"code_permanent"`
	ProgramCode   string           `json:"programCode" db:"program_code"`
	NominalTerm   string           `json:"nominalTerm" db:"nominal_term"`
	Sigle         string           `json:"sigle" db:"sigle"`
	Term          string           `json:"term" db:"term"`
	Year          int              `json:"year" db:"year"`
	Status        EnrollmentStatus `json:"status" db:"status"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	Grade         *float64         `json:"grade,omitempty" db:"grade"` // Final grade, nil until completed

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}

// Passed reports whether this enrollment counts as a completed course
// for prerequisite purposes.
func (e *Enrollment) Passed() bool {
	return e.Grade != nil && *e.Grade >= PassingGrade
}
