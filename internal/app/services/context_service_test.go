package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcotte/inscripto/internal/app/models"
)

func TestResolveBuildsContextWithCreditTotal(t *testing.T) {
	students := &fakeStudentStore{students: map[string]*models.Student{
		"TREM08089508": {
			CodePermanent: "TREM08089508",
			FirstName:     "Marie",
			LastName:      "Tremblay",
			ProgramCode:   "7316",
			Program:       &models.Program{Code: "7316", Label: "Baccalauréat en informatique"},
		},
	}}
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		{ID: 1, CodePermanent: "TREM08089508", Sigle: "INF1000", Term: "Automne 2025", Status: models.StatusEnrolled,
			Course: &models.Course{Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3}},
		{ID: 2, CodePermanent: "TREM08089508", Sigle: "MTH1000", Term: "Automne 2025", Status: models.StatusEnrolled,
			Course: &models.Course{Sigle: "MTH1000", Title: "Mathématiques discrètes", Credits: 4}},
		{ID: 3, CodePermanent: "TREM08089508", Sigle: "INF1120", Term: "Hiver 2025", Status: models.StatusCompleted,
			Course: &models.Course{Sigle: "INF1120", Title: "Programmation I", Credits: 3}},
	}}

	svc := NewContextService(students, enrollments, zerolog.Nop())
	studentCtx, err := svc.Resolve(context.Background(), "TREM08089508")
	require.NoError(t, err)
	require.NotNil(t, studentCtx)

	// Completed courses are not part of the active context.
	assert.Len(t, studentCtx.ActiveEnrollments, 2)
	assert.Equal(t, 7.0, studentCtx.TotalCredits)
	assert.Equal(t, "7316", studentCtx.Program.Code)
}

func TestResolveEmptyCodeYieldsNilContext(t *testing.T) {
	svc := NewContextService(&fakeStudentStore{}, &fakeEnrollmentStore{}, zerolog.Nop())

	studentCtx, err := svc.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, studentCtx)
}

func TestResolveUnknownStudentYieldsNilContext(t *testing.T) {
	svc := NewContextService(&fakeStudentStore{students: map[string]*models.Student{}}, &fakeEnrollmentStore{}, zerolog.Nop())

	studentCtx, err := svc.Resolve(context.Background(), "ABCD00000000")
	require.NoError(t, err)
	assert.Nil(t, studentCtx)
}
