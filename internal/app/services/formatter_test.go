package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/models/dto"
)

func TestFormatRegistrationMixedBatch(t *testing.T) {
	f := NewFormatter()
	text := f.FormatRegistration(&dto.BatchResult{
		Term: "Automne 2025",
		Results: []dto.CourseResult{
			{Sigle: "INF1000", Success: true, Title: "Introduction à la programmation", Credits: 3},
			{Sigle: "XYZ9999", Success: false, Error: "Le cours XYZ9999 est introuvable."},
		},
		Succeeded: 1,
		Failed:    1,
	})

	assert.Contains(t, text, "Automne 2025")
	assert.Contains(t, text, "INF1000 : inscription confirmée")
	assert.Contains(t, text, "XYZ9999 : Le cours XYZ9999 est introuvable.")
	assert.Contains(t, text, "1 inscription(s) réussie(s), 1 échec(s).")
}

func TestFormatRegistrationEmpty(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "Aucun cours à traiter.", f.FormatRegistration(nil))
	assert.Equal(t, "Aucun cours à traiter.", f.FormatRegistration(&dto.BatchResult{}))
}

func TestFormatSearchTruncatesLongLists(t *testing.T) {
	f := NewFormatter()
	result := &dto.SearchResult{Criteria: "informatique"}
	for i := 0; i < 14; i++ {
		result.Courses = append(result.Courses, dto.CourseMatch{
			Course: models.Course{Sigle: fmt.Sprintf("INF1%03d", i), Title: "Un cours", Credits: 3},
		})
	}

	text := f.FormatSearch(result)
	assert.Contains(t, text, "14 cours trouvés")
	assert.Contains(t, text, "et 4 autre(s) cours.")
	// Ten listed entries at most.
	assert.Equal(t, 10, strings.Count(text, "- INF"))
}

func TestFormatSearchWithOffering(t *testing.T) {
	f := NewFormatter()
	text := f.FormatSearch(&dto.SearchResult{
		Term: "Automne 2025",
		Courses: []dto.CourseMatch{{
			Course:   models.Course{Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3},
			Offering: &models.Offering{Schedule: "Lundi 9h30-12h30", Location: "PK-1140"},
		}},
	})

	assert.Contains(t, text, "1 cours trouvé")
	assert.Contains(t, text, "[Lundi 9h30-12h30, PK-1140]")
}

func TestFormatSearchEmpty(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "Aucun cours ne correspond à votre recherche.", f.FormatSearch(&dto.SearchResult{}))
}

func TestFormatEnrollments(t *testing.T) {
	f := NewFormatter()
	text := f.FormatEnrollments(&dto.StudentContext{
		ActiveEnrollments: []dto.ActiveEnrollment{
			{Enrollment: models.Enrollment{Term: "Automne 2025"}, Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3},
			{Enrollment: models.Enrollment{Term: "Automne 2025"}, Sigle: "MTH1000", Title: "Mathématiques discrètes", Credits: 4},
		},
		TotalCredits: 7,
	})

	assert.Contains(t, text, "INF1000")
	assert.Contains(t, text, "MTH1000")
	assert.Contains(t, text, "Total : 7 crédits.")
}

func TestFormatEnrollmentsEmpty(t *testing.T) {
	f := NewFormatter()
	text := f.FormatEnrollments(&dto.StudentContext{})
	assert.Equal(t, "Vous n'êtes inscrit à aucun cours actuellement.", text)
}

func TestFormatRecommendation(t *testing.T) {
	f := NewFormatter()
	text := f.FormatRecommendation(&dto.RecommendationResult{
		ProgramLabel: "Baccalauréat en informatique",
		Courses: []models.Course{
			{Sigle: "INF1000", Title: "Introduction à la programmation", Credits: 3},
			{Sigle: "MTH1000", Title: "Mathématiques discrètes", Credits: 3},
		},
		Available: 6,
	})

	assert.Contains(t, text, "Baccalauréat en informatique")
	assert.Contains(t, text, "1. INF1000")
	assert.Contains(t, text, "2. MTH1000")
	assert.Contains(t, text, "2 de 6 cours disponibles.")
}

func TestFormatStudentInfo(t *testing.T) {
	f := NewFormatter()
	text := f.FormatStudentInfo(&dto.StudentContext{
		Student: &models.Student{CodePermanent: "TREM08089508", FirstName: "Marie", LastName: "Tremblay"},
		Program: &models.Program{Code: "7316", Label: "Baccalauréat en informatique"},
		ActiveEnrollments: []dto.ActiveEnrollment{
			{Sigle: "INF1000", Credits: 3},
		},
		TotalCredits: 3,
	})

	assert.Contains(t, text, "Marie Tremblay (code permanent TREM08089508)")
	assert.Contains(t, text, "Programme : Baccalauréat en informatique (7316)")
	assert.Contains(t, text, "1 cours actif(s), 3 crédits au total.")
}

func TestFormatStudentInfoWithoutContext(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, NoContextSentence, f.FormatStudentInfo(nil))
}
