package models

// Season represents the season part of an academic term
type Season string

// Season constants (French labels, as stored in the schedule data)
const (
	SeasonAutumn Season = "Automne"
	SeasonWinter Season = "Hiver"
	SeasonSummer Season = "Été"
)

// EnrollmentStatus defines the lifecycle status of an enrollment row
type EnrollmentStatus string

const (
	// StatusEnrolled marks an active enrollment
	StatusEnrolled EnrollmentStatus = "Enrolled"
	// StatusCompleted marks a finished enrollment with a final grade
	StatusCompleted EnrollmentStatus = "Completed"
)

// PassingGrade is the minimum final grade that counts as a completed course
// when evaluating prerequisites.
const PassingGrade = 50.0
