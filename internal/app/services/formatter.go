package services

import (
	"fmt"
	"strings"

	"github.com/marcotte/inscripto/internal/app/models/dto"
)

// User-facing fixed sentences.
const (
	// ApologySentence is the generic failure reply of the agent.
	ApologySentence = "Désolé, j'ai rencontré une erreur en traitant votre demande. Veuillez réessayer."
	// FallbackSentence replaces the LLM reply when synthesis fails and no
	// template applies.
	FallbackSentence = "Votre demande a été traitée avec succès!"
	// NoContextSentence is returned when an operation needs a student
	// identity that was not supplied.
	NoContextSentence = "Veuillez fournir votre code permanent pour cette opération."
)

// searchDisplayLimit caps how many search hits are rendered; the remainder
// is summarized as a count.
const searchDisplayLimit = 10

// Formatter renders operation results as short French paragraphs. Every
// renderer is a pure function of its result and tolerates empty or nil
// collections by emitting a fixed placeholder sentence.
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatRegistration renders a registration batch result.
func (f *Formatter) FormatRegistration(result *dto.BatchResult) string {
	if result == nil || len(result.Results) == 0 {
		return "Aucun cours à traiter."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Résultats d'inscription pour le trimestre %s :\n", result.Term)
	for _, r := range result.Results {
		if r.Success {
			fmt.Fprintf(&b, "- %s : inscription confirmée (%s, %.0f crédits)\n", r.Sigle, r.Title, r.Credits)
		} else {
			fmt.Fprintf(&b, "- %s : %s\n", r.Sigle, r.Error)
		}
	}
	fmt.Fprintf(&b, "%d inscription(s) réussie(s), %d échec(s).", result.Succeeded, result.Failed)
	return b.String()
}

// FormatWithdrawal renders a withdrawal batch result.
func (f *Formatter) FormatWithdrawal(result *dto.BatchResult) string {
	if result == nil || len(result.Results) == 0 {
		return "Aucun cours à traiter."
	}

	var b strings.Builder
	b.WriteString("Résultats de désinscription :\n")
	for _, r := range result.Results {
		if r.Success {
			fmt.Fprintf(&b, "- %s : désinscription confirmée (%s, %s)\n", r.Sigle, r.Title, r.Term)
		} else {
			fmt.Fprintf(&b, "- %s : %s\n", r.Sigle, r.Error)
		}
	}
	fmt.Fprintf(&b, "%d désinscription(s) réussie(s), %d échec(s).", result.Succeeded, result.Failed)
	return b.String()
}

// FormatSearch renders search hits, truncated at ten with a remainder count.
func (f *Formatter) FormatSearch(result *dto.SearchResult) string {
	if result == nil || len(result.Courses) == 0 {
		return "Aucun cours ne correspond à votre recherche."
	}

	count := len(result.Courses)
	var b strings.Builder
	if count == 1 {
		b.WriteString("1 cours trouvé")
	} else {
		fmt.Fprintf(&b, "%d cours trouvés", count)
	}
	if result.Term != "" {
		fmt.Fprintf(&b, " pour le trimestre %s", result.Term)
	}
	b.WriteString(" :\n")

	for i, match := range result.Courses {
		if i == searchDisplayLimit {
			fmt.Fprintf(&b, "… et %d autre(s) cours.", count-searchDisplayLimit)
			break
		}
		fmt.Fprintf(&b, "- %s : %s (%.0f crédits)", match.Course.Sigle, match.Course.Title, match.Course.Credits)
		if match.Offering != nil {
			fmt.Fprintf(&b, " [%s, %s]", match.Offering.Schedule, match.Offering.Location)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatRecommendation renders the suggested-course list.
func (f *Formatter) FormatRecommendation(result *dto.RecommendationResult) string {
	if result == nil || len(result.Courses) == 0 {
		return "Aucun cours à suggérer pour le moment."
	}

	var b strings.Builder
	if result.ProgramLabel != "" {
		fmt.Fprintf(&b, "Suggestions pour le programme %s :\n", result.ProgramLabel)
	} else {
		b.WriteString("Suggestions de cours :\n")
	}
	for i, course := range result.Courses {
		fmt.Fprintf(&b, "%d. %s : %s (%.0f crédits)\n", i+1, course.Sigle, course.Title, course.Credits)
	}
	fmt.Fprintf(&b, "%d de %d cours disponibles.", len(result.Courses), result.Available)
	return b.String()
}

// FormatEnrollments renders the active-enrollment list with the credit total.
func (f *Formatter) FormatEnrollments(studentCtx *dto.StudentContext) string {
	if studentCtx == nil {
		return NoContextSentence
	}
	if len(studentCtx.ActiveEnrollments) == 0 {
		return "Vous n'êtes inscrit à aucun cours actuellement."
	}

	var b strings.Builder
	b.WriteString("Vos cours actuels :\n")
	for _, e := range studentCtx.ActiveEnrollments {
		fmt.Fprintf(&b, "- %s : %s (%.0f crédits, %s)\n", e.Sigle, e.Title, e.Credits, e.Enrollment.Term)
	}
	fmt.Fprintf(&b, "Total : %.0f crédits.", studentCtx.TotalCredits)
	return b.String()
}

// FormatStudentInfo renders the student record summary.
func (f *Formatter) FormatStudentInfo(studentCtx *dto.StudentContext) string {
	if studentCtx == nil || studentCtx.Student == nil {
		return NoContextSentence
	}

	student := studentCtx.Student
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (code permanent %s)\n", student.FirstName, student.LastName, student.CodePermanent)
	if studentCtx.Program != nil {
		fmt.Fprintf(&b, "Programme : %s (%s)\n", studentCtx.Program.Label, studentCtx.Program.Code)
	}
	fmt.Fprintf(&b, "%d cours actif(s), %.0f crédits au total.", len(studentCtx.ActiveEnrollments), studentCtx.TotalCredits)
	return b.String()
}
