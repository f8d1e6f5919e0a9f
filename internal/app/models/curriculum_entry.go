package models

// CurriculumEntry links a program to a course in its plan of study,
// with the term the course is nominally taken in.
type CurriculumEntry struct {
	ProgramCode string `json:"programCode" db:"program_code"`
	Sigle       string `json:"sigle" db:"sigle"`
	NominalTerm string `json:"nominalTerm" db:"nominal_term" example:"Automne 2025"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
