package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
)

func testStudentContext() *dto.StudentContext {
	return &dto.StudentContext{
		Student: &models.Student{
			CodePermanent: "TREM08089508",
			FirstName:     "Marie",
			LastName:      "Tremblay",
			ProgramCode:   "7316",
		},
		Program: &models.Program{Code: "7316", Label: "Baccalauréat en informatique"},
	}
}

func newRegistrationFixture() (*RegistrationService, *fakeEnrollmentStore) {
	grade := 72.0
	courses := &fakeCourseStore{courses: map[string]*models.Course{
		"INF1000": {Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3, Department: "INF"},
		"INF2000": {Sigle: "INF2000", Title: "Structures de données", Credits: 3, Department: "INF", Prerequisites: "INF1000,MTH1000"},
		"ADM1002": {Sigle: "ADM1002", Title: "Principes de gestion", Credits: 3, Department: "ADM"},
	}}
	curriculum := &fakeCurriculumStore{entries: map[string]*models.CurriculumEntry{
		"7316/INF1000": {ProgramCode: "7316", Sigle: "INF1000", NominalTerm: "Automne 2025"},
		"7316/INF2000": {ProgramCode: "7316", Sigle: "INF2000", NominalTerm: "Hiver 2026"},
	}}
	offerings := &fakeOfferingStore{offerings: []*models.Offering{
		{ID: 1, Sigle: "INF1000", Term: "Automne 2025", Year: 2025},
		{ID: 2, Sigle: "INF2000", Term: "Automne 2025", Year: 2025},
	}}
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		{ID: 100, CodePermanent: "TREM08089508", Sigle: "INF1000", Term: "Hiver 2025", Year: 2025,
			Status: models.StatusCompleted, Grade: &grade},
	}}

	svc := NewRegistrationService(courses, curriculum, offerings, enrollments, zerolog.Nop())
	return svc, enrollments
}

func TestRegisterSuccess(t *testing.T) {
	svc, enrollments := newRegistrationFixture()

	batch, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"inf1000"},
		Term:   "automne 2025",
	}, testStudentContext())
	require.NoError(t, err)

	// INF1000 was completed in a past term; only Enrolled rows block a new
	// registration for the requested term.
	require.Len(t, batch.Results, 1)
	result := batch.Results[0]
	assert.True(t, result.Success)
	assert.Equal(t, "INF1000", result.Sigle)
	assert.Equal(t, "Automne 2025", result.Term)
	assert.Equal(t, "Introduction à la programmation", result.Title)
	assert.NotZero(t, result.EnrollmentID)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Equal(t, 0, batch.Failed)
	assert.Len(t, enrollments.enrollments, 2)
}

func TestRegisterCourseNotFound(t *testing.T) {
	svc, _ := newRegistrationFixture()

	batch, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"XYZ9999"},
		Term:   "Automne 2025",
	}, testStudentContext())
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.False(t, batch.Results[0].Success)
	assert.Equal(t, dto.FailureCourseNotFound, batch.Results[0].Code)
	assert.Contains(t, batch.Results[0].Error, "introuvable")
}

func TestRegisterNotInProgram(t *testing.T) {
	svc, _ := newRegistrationFixture()

	batch, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"ADM1002"},
		Term:   "Automne 2025",
	}, testStudentContext())
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, dto.FailureNotInProgram, batch.Results[0].Code)
	assert.Contains(t, batch.Results[0].Error, "programme")
}

func TestRegisterNotOfferedThisTerm(t *testing.T) {
	svc, _ := newRegistrationFixture()

	batch, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"INF1000"},
		Term:   "Hiver 2026",
	}, testStudentContext())
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, dto.FailureNotOfferedThisTerm, batch.Results[0].Code)
}

func TestRegisterAlreadyEnrolledIsIdempotent(t *testing.T) {
	svc, enrollments := newRegistrationFixture()
	params := dto.IntentParameters{Sigles: []string{"INF1000"}, Term: "Automne 2025"}

	first, err := svc.Register(context.Background(), params, testStudentContext())
	require.NoError(t, err)
	require.True(t, first.Results[0].Success)

	second, err := svc.Register(context.Background(), params, testStudentContext())
	require.NoError(t, err)
	require.Len(t, second.Results, 1)
	assert.False(t, second.Results[0].Success)
	assert.Equal(t, dto.FailureAlreadyEnrolled, second.Results[0].Code)
	assert.Contains(t, second.Results[0].Error, "déjà inscrit")

	// No second row was written.
	assert.Len(t, enrollments.enrollments, 2)
}

func TestRegisterPrerequisitesMissing(t *testing.T) {
	svc, _ := newRegistrationFixture()

	batch, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"INF2000"},
		Term:   "Automne 2025",
	}, testStudentContext())
	require.NoError(t, err)

	// INF1000 was passed at 72, MTH1000 never taken.
	require.Len(t, batch.Results, 1)
	assert.Equal(t, dto.FailurePrerequisitesMissing, batch.Results[0].Code)
	assert.Equal(t, []string{"MTH1000"}, batch.Results[0].Missing)
	assert.Contains(t, batch.Results[0].Error, "MTH1000")
}

func TestRegisterMixedBatchContinuesAfterFailure(t *testing.T) {
	svc, _ := newRegistrationFixture()

	batch, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"XYZ9999", "INF1000"},
		Term:   "Automne 2025",
	}, testStudentContext())
	require.NoError(t, err)

	require.Len(t, batch.Results, 2)
	assert.False(t, batch.Results[0].Success)
	assert.True(t, batch.Results[1].Success)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Equal(t, 1, batch.Failed)
}

func TestRegisterInvalidTerm(t *testing.T) {
	svc, _ := newRegistrationFixture()

	_, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"INF1000"},
		Term:   "pas un trimestre",
	}, testStudentContext())
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterRequiresStudentContext(t *testing.T) {
	svc, _ := newRegistrationFixture()

	_, err := svc.Register(context.Background(), dto.IntentParameters{
		Sigles: []string{"INF1000"},
		Term:   "Automne 2025",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoStudentContext)
}

func TestRegisterRequiresSigles(t *testing.T) {
	svc, _ := newRegistrationFixture()

	_, err := svc.Register(context.Background(), dto.IntentParameters{
		Term: "Automne 2025",
	}, testStudentContext())
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
