package models

// Classroom represents a classroom bound to a teacher, course and cycle.
type Classroom struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name" binding:"required,max=100"`
	StartDate string `db:"start_date" json:"start_date"`
	EndDate   string `db:"end_date" json:"end_date"`
	TeacherID int64  `db:"id_teacher" json:"id_teacher"`
	CourseID  int64  `db:"id_course" json:"id_course"`
	CycleID   int64  `db:"id_cicle" json:"id_cicle"`
}
