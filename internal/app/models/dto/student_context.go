package dto

import "github.com/marcotte/inscripto/internal/app/models"

// ActiveEnrollment pairs an Enrolled row with the course data the formatters
// and credit total need.
type ActiveEnrollment struct {
	Enrollment models.Enrollment `json:"enrollment"`
	Sigle      string            `json:"sigle"`
	Title      string            `json:"title"`
	Credits    float64           `json:"credits"`
}

// StudentContext is the derived academic context for one request: the student
// record, the active enrollments joined to their courses, and the credit
// total. It is rebuilt on every request and never cached, so each request
// sees the writes of the previous one.
type StudentContext struct {
	Student           *models.Student    `json:"student"`
	Program           *models.Program    `json:"program,omitempty"`
	ActiveEnrollments []ActiveEnrollment `json:"activeEnrollments"`
	TotalCredits      float64            `json:"totalCredits"`
}
