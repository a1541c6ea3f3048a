package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const classroomSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100),
	start_date DATE,
	end_date DATE,
	id_teacher INTEGER,
	id_course INTEGER,
	id_cicle INTEGER,
	FOREIGN KEY (id_teacher) REFERENCES teacher(id),
	FOREIGN KEY (id_course) REFERENCES course(id),
	FOREIGN KEY (id_cicle) REFERENCES cicle(id)`

// ClassroomRepository manages persistence for classrooms and owns the
// inscription repository for cascade deletion.
type ClassroomRepository struct {
	*Generic
	db           *sqlx.DB
	inscriptions *InscriptionRepository
}

// NewClassroomRepository constructs a ClassroomRepository.
func NewClassroomRepository(db *sqlx.DB, log *zap.Logger) *ClassroomRepository {
	return &ClassroomRepository{
		Generic:      NewGeneric(db, "classroom", log),
		db:           db,
		inscriptions: NewInscriptionRepository(db, log),
	}
}

// CreateTable ensures the classroom table exists.
func (r *ClassroomRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, classroomSchema)
}

// Create inserts a classroom and assigns the store-generated id.
func (r *ClassroomRepository) Create(ctx context.Context, c *models.Classroom) error {
	id, err := r.Insert(ctx, classroomRecord(c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Save updates the classroom row identified by its id and reports whether
// a row was changed.
func (r *ClassroomRepository) Save(ctx context.Context, c *models.Classroom) (bool, error) {
	n, err := r.Update(ctx, classroomRecord(c), Record{"id": c.ID})
	return n > 0, err
}

// DeleteCascade removes the classroom's inscriptions and their payments,
// bottom-up, then the classroom itself.
func (r *ClassroomRepository) DeleteCascade(ctx context.Context, id int64) (bool, error) {
	return deleteCascade(ctx, r.db, r.Generic, []dependent{r.inscriptions.asDependent("id_classroom")}, id)
}

func (r *ClassroomRepository) asDependent(fk string) dependent {
	return dependent{
		repo:     r.Generic,
		fk:       fk,
		children: []dependent{r.inscriptions.asDependent("id_classroom")},
	}
}

func classroomRecord(c *models.Classroom) Record {
	return Record{
		"name":       c.Name,
		"start_date": c.StartDate,
		"end_date":   c.EndDate,
		"id_teacher": c.TeacherID,
		"id_course":  c.CourseID,
		"id_cicle":   c.CycleID,
	}
}
