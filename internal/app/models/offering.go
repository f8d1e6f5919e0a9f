package models

// Offering represents a scheduled instance of a course in a specific term.
// A course may have zero, one or many offerings across terms.
type Offering struct {
	ID         int64  `json:"id" db:"id"`
	Sigle      string `json:"sigle" db:"sigle"`
	Term       string `json:"term" db:"term" example:"Automne 2025"`
	Year       int    `json:"year" db:"year"`
	Schedule   string `json:"schedule" db:"schedule" example:"Lundi 14h-17h"`
	Location   string `json:"location" db:"location"`
	Instructor string `json:"instructor" db:"instructor"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
