package models

// Course represents a course referenced by classrooms.
type Course struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name" binding:"required,max=100"`
	Level int    `db:"level" json:"level"`
}
