package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/models/dto"
)

type fakeNLU struct {
	intent   *dto.Intent
	inferErr error
	reply    string
	replyErr error
}

func (f *fakeNLU) InferIntent(_ context.Context, _ string) (*dto.Intent, error) {
	return f.intent, f.inferErr
}

func (f *fakeNLU) GenerateReply(_ context.Context, _ *dto.Intent, _ interface{}, _ *dto.StudentContext) (string, error) {
	return f.reply, f.replyErr
}

// newAgentFixture wires the full service graph over in-memory stores with a
// small catalog: program 7316, INF1000 offered in Automne 2025, one student.
func newAgentFixture(nlu NLUService) (*AgentService, *fakeEnrollmentStore) {
	students := &fakeStudentStore{students: map[string]*models.Student{
		"TREM08089508": {
			CodePermanent: "TREM08089508",
			FirstName:     "Marie",
			LastName:      "Tremblay",
			ProgramCode:   "7316",
			Program:       &models.Program{Code: "7316", Label: "Baccalauréat en informatique"},
		},
	}}
	courses := &fakeCourseStore{courses: map[string]*models.Course{
		"INF1000": {Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3, Department: "INF"},
	}}
	curriculum := &fakeCurriculumStore{
		entries: map[string]*models.CurriculumEntry{
			"7316/INF1000": {ProgramCode: "7316", Sigle: "INF1000", NominalTerm: "Automne 2025"},
		},
		courses: map[string][]*models.Course{
			"7316": {{Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3}},
		},
	}
	offerings := &fakeOfferingStore{offerings: []*models.Offering{
		{ID: 1, Sigle: "INF1000", Term: "Automne 2025", Year: 2025,
			Course: &models.Course{Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3, Department: "INF"}},
	}}
	enrollments := &fakeEnrollmentStore{}

	logger := zerolog.Nop()
	contexts := NewContextService(students, enrollments, logger)
	registrations := NewRegistrationService(courses, curriculum, offerings, enrollments, logger)
	withdrawals := NewWithdrawalService(enrollments, logger)
	searches := NewSearchService(courses, offerings, logger)
	recommendations := NewRecommendationService(curriculum, logger)

	agent := NewAgentService(nlu, contexts, registrations, withdrawals, searches, recommendations, logger)
	return agent, enrollments
}

func TestProcessRegistrationEndToEnd(t *testing.T) {
	nlu := &fakeNLU{intent: &dto.Intent{
		Action:     dto.ActionRegister,
		Confidence: 0.95,
		Parameters: dto.IntentParameters{
			Sigles: []string{"INF1000"},
			Term:   "Automne 2025",
		},
	}}
	agent, enrollments := newAgentFixture(nlu)

	response := agent.Process(context.Background(), "inscris-moi à INF1000 pour l'automne 2025", "TREM08089508")

	require.True(t, response.Success)
	require.NotNil(t, response.Intent)
	assert.Equal(t, dto.ActionRegister, response.Intent.Action)
	assert.NotEmpty(t, response.Timestamp)

	batch, ok := response.Results.(*dto.BatchResult)
	require.True(t, ok)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Len(t, enrollments.enrollments, 1)

	// No synthesized reply: the template renderer fills in.
	assert.Contains(t, response.Response, "INF1000 : inscription confirmée")
}

func TestProcessPrefersSynthesizedReply(t *testing.T) {
	nlu := &fakeNLU{
		intent: &dto.Intent{
			Action:     dto.ActionRegister,
			Parameters: dto.IntentParameters{Sigles: []string{"INF1000"}, Term: "Automne 2025"},
		},
		reply: "C'est fait, vous êtes inscrite à INF1000.",
	}
	agent, _ := newAgentFixture(nlu)

	response := agent.Process(context.Background(), "inscris-moi à INF1000", "TREM08089508")
	require.True(t, response.Success)
	assert.Equal(t, "C'est fait, vous êtes inscrite à INF1000.", response.Response)
}

func TestProcessWithdrawalNoMatchStaysSuccessfulEnvelope(t *testing.T) {
	nlu := &fakeNLU{intent: &dto.Intent{
		Action:     dto.ActionWithdraw,
		Parameters: dto.IntentParameters{Sigles: []string{"INF1000"}},
	}}
	agent, _ := newAgentFixture(nlu)

	response := agent.Process(context.Background(), "désinscris-moi de INF1000", "TREM08089508")

	// A rule failure is data, not a pipeline failure.
	require.True(t, response.Success)
	batch, ok := response.Results.(*dto.BatchResult)
	require.True(t, ok)
	assert.Equal(t, 1, batch.Failed)
	assert.Contains(t, response.Response, "Aucune inscription active trouvée pour INF1000.")
}

func TestProcessInferenceFailure(t *testing.T) {
	nlu := &fakeNLU{inferErr: errors.New("model unreachable")}
	agent, _ := newAgentFixture(nlu)

	response := agent.Process(context.Background(), "n'importe quoi", "TREM08089508")

	assert.False(t, response.Success)
	assert.Equal(t, ApologySentence, response.Response)
	assert.NotEmpty(t, response.Error)
}

func TestProcessMissingStudentContext(t *testing.T) {
	nlu := &fakeNLU{intent: &dto.Intent{
		Action:     dto.ActionRegister,
		Parameters: dto.IntentParameters{Sigles: []string{"INF1000"}, Term: "Automne 2025"},
	}}
	agent, _ := newAgentFixture(nlu)

	response := agent.Process(context.Background(), "inscris-moi à INF1000", "")

	assert.False(t, response.Success)
	assert.Equal(t, NoContextSentence, response.Response)
}

func TestProcessUsesIntentCodePermanent(t *testing.T) {
	nlu := &fakeNLU{intent: &dto.Intent{
		Action: dto.ActionViewEnrollments,
		Parameters: dto.IntentParameters{
			CodePermanent: "TREM08089508",
		},
	}}
	agent, _ := newAgentFixture(nlu)

	// No caller-supplied code; the one the model extracted is used instead.
	response := agent.Process(context.Background(), "mes cours pour TREM08089508", "")
	require.True(t, response.Success)
	assert.Contains(t, response.Response, "Vous n'êtes inscrit à aucun cours actuellement.")
}

func TestProcessUnknownAction(t *testing.T) {
	nlu := &fakeNLU{intent: &dto.Intent{Action: dto.Action("COMMANDER_PIZZA")}}
	agent, _ := newAgentFixture(nlu)

	response := agent.Process(context.Background(), "une pizza svp", "TREM08089508")

	assert.False(t, response.Success)
	assert.NotNil(t, response.Intent)
	assert.Contains(t, response.Response, "reformuler")
}

func TestProcessStudentInfo(t *testing.T) {
	nlu := &fakeNLU{intent: &dto.Intent{Action: dto.ActionStudentInfo}}
	agent, _ := newAgentFixture(nlu)

	response := agent.Process(context.Background(), "mon dossier", "TREM08089508")
	require.True(t, response.Success)
	assert.Contains(t, response.Response, "Marie Tremblay")
}
