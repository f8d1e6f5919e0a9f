package models

// Program represents a program of study referenced by students and curriculum entries.
type Program struct {
	Code  string `json:"code" db:"code" example:"7316"`
	Label string `json:"label" db:"label" example:"Baccalauréat en informatique"`
}
