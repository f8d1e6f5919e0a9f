package models

// Course represents a course in the university catalog.
// Sigle follows the 3-letters-4-digits pattern (e.g. INF1062).
type Course struct {
	Sigle         string  `json:"sigle" db:"sigle" example:"INF1062"`
	Title         string  `json:"title" db:"title"`
	Credits       float64 `json:"credits" db:"credits"`
	Department    string  `json:"department" db:"department" example:"INF"`
	Content       *string `json:"content,omitempty" db:"content"`       // Nullable
	Objectives    *string `json:"objectives,omitempty" db:"objectives"` // Nullable
	Prerequisites string  `json:"prerequisites" db:"prerequisites"`     // Comma-separated sigles, may be empty
}
