package dto

// Action identifies the operation the NLU collaborator inferred from a
// student message.
type Action string

// Available actions. The string values are the labels the intent-extraction
// prompt asks the model to answer with, so they travel unchanged between the
// collaborator and the dispatch table.
const (
	ActionRegister        Action = "INSCRIRE_COURS"
	ActionWithdraw        Action = "DESINSCRIRE_COURS"
	ActionViewEnrollments Action = "VOIR_COURS"
	ActionSearch          Action = "CHERCHER_COURS"
	ActionRecommend       Action = "RECOMMANDER_COURS"
	ActionStudentInfo     Action = "INFO_ETUDIANT"
)

// Intent is the typed record produced by the NLU collaborator for a free-text
// student message.
type Intent struct {
	Action     Action           `json:"action" example:"INSCRIRE_COURS"`
	Confidence float64          `json:"confiance" example:"0.95"`
	Parameters IntentParameters `json:"parametres"`
	Rationale  string           `json:"raisonnement,omitempty"`
}

// IntentParameters carries the action-specific fields extracted from the
// message. All fields are optional; each handler validates what it needs.
type IntentParameters struct {
	CodePermanent  string   `json:"code_permanant,omitempty"`
	Sigles         []string `json:"sigles_cours,omitempty" example:"INF1062,MTH1007"`
	Term           string   `json:"trimestre,omitempty" example:"Automne 2025"`
	Year           int      `json:"annee,omitempty" example:"2025"`
	CourseCount    int      `json:"nombre_cours,omitempty" example:"4"`
	SearchCriteria string   `json:"criteres_recherche,omitempty"`
}
