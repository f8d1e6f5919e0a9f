package models

// Student defines the student model based on the 'students' table
type Student struct {
	CodePermanent string `json:"codePermanent" db:"code_permanent" example:"TREJ12345678"` // Permanent code, unique and immutable
	FirstName     string `json:"firstName" db:"first_name"`
	LastName      string `json:"lastName" db:"last_name"`
	ProgramCode   string `json:"programCode" db:"program_code"`
	Status        string `json:"status" db:"status" example:"Actif"`

	// Relations (populated when needed)
	Program *Program `json:"program,omitempty"`
}
