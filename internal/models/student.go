package models

// Student represents a student referenced by inscriptions.
type Student struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name" binding:"required,max=100"`
	Lastname    string `db:"lastname" json:"lastname" binding:"max=100"`
	Phone       string `db:"phone" json:"phone" binding:"max=20"`
	DateBaptism string `db:"date_baptism" json:"date_baptism"`
	DateOfBirth string `db:"date_of_birth" json:"date_of_birth"`
	TeamID      int64  `db:"id_team" json:"id_team"`
}
