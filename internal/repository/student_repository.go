package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const studentSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100),
	lastname VARCHAR(100),
	phone VARCHAR(20),
	date_baptism DATE,
	date_of_birth DATE,
	id_team INTEGER,
	FOREIGN KEY (id_team) REFERENCES team(id)`

// StudentRepository manages persistence for students.
type StudentRepository struct {
	*Generic
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB, log *zap.Logger) *StudentRepository {
	return &StudentRepository{Generic: NewGeneric(db, "student", log), db: db}
}

// CreateTable ensures the student table exists.
func (r *StudentRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, studentSchema)
}

// Create inserts a student and assigns the store-generated id.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	id, err := r.Insert(ctx, studentRecord(s))
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// Save updates the student row identified by its id and reports whether a
// row was changed.
func (r *StudentRepository) Save(ctx context.Context, s *models.Student) (bool, error) {
	n, err := r.Update(ctx, studentRecord(s), Record{"id": s.ID})
	return n > 0, err
}

// DeleteByID removes the student row only. Inscriptions referencing the
// student are not cascaded.
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	n, err := r.Delete(ctx, Record{"id": id})
	return n > 0, err
}

func studentRecord(s *models.Student) Record {
	return Record{
		"name":          s.Name,
		"lastname":      s.Lastname,
		"phone":         s.Phone,
		"date_baptism":  s.DateBaptism,
		"date_of_birth": s.DateOfBirth,
		"id_team":       s.TeamID,
	}
}
