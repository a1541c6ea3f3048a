package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const teacherSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100),
	lastname VARCHAR(100),
	phone VARCHAR(20),
	date_baptism DATE,
	date_of_birth DATE,
	id_team INTEGER,
	FOREIGN KEY (id_team) REFERENCES team(id)`

// TeacherRepository manages persistence for teachers and owns a classroom
// repository for cascade deletion.
type TeacherRepository struct {
	*Generic
	db         *sqlx.DB
	classrooms *ClassroomRepository
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB, log *zap.Logger) *TeacherRepository {
	return &TeacherRepository{
		Generic:    NewGeneric(db, "teacher", log),
		db:         db,
		classrooms: NewClassroomRepository(db, log),
	}
}

// CreateTable ensures the teacher table exists.
func (r *TeacherRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, teacherSchema)
}

// Create inserts a teacher and assigns the store-generated id.
func (r *TeacherRepository) Create(ctx context.Context, t *models.Teacher) error {
	id, err := r.Insert(ctx, teacherRecord(t))
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

// Save updates the teacher row identified by its id and reports whether a
// row was changed.
func (r *TeacherRepository) Save(ctx context.Context, t *models.Teacher) (bool, error) {
	n, err := r.Update(ctx, teacherRecord(t), Record{"id": t.ID})
	return n > 0, err
}

// DeleteCascade removes the teacher's classrooms with their inscriptions
// and payments, then the teacher row.
func (r *TeacherRepository) DeleteCascade(ctx context.Context, id int64) (bool, error) {
	return deleteCascade(ctx, r.db, r.Generic, []dependent{r.classrooms.asDependent("id_teacher")}, id)
}

func teacherRecord(t *models.Teacher) Record {
	return Record{
		"name":          t.Name,
		"lastname":      t.Lastname,
		"phone":         t.Phone,
		"date_baptism":  t.DateBaptism,
		"date_of_birth": t.DateOfBirth,
		"id_team":       t.TeamID,
	}
}
