package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const courseSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100),
	level INTEGER`

// CourseRepository manages persistence for courses and owns a classroom
// repository for cascade deletion.
type CourseRepository struct {
	*Generic
	db         *sqlx.DB
	classrooms *ClassroomRepository
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB, log *zap.Logger) *CourseRepository {
	return &CourseRepository{
		Generic:    NewGeneric(db, "course", log),
		db:         db,
		classrooms: NewClassroomRepository(db, log),
	}
}

// CreateTable ensures the course table exists.
func (r *CourseRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, courseSchema)
}

// Create inserts a course and assigns the store-generated id.
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	id, err := r.Insert(ctx, courseRecord(c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Save updates the course row identified by its id and reports whether a
// row was changed.
func (r *CourseRepository) Save(ctx context.Context, c *models.Course) (bool, error) {
	n, err := r.Update(ctx, courseRecord(c), Record{"id": c.ID})
	return n > 0, err
}

// DeleteCascade removes the course's classrooms with their inscriptions
// and payments, then the course itself.
func (r *CourseRepository) DeleteCascade(ctx context.Context, id int64) (bool, error) {
	return deleteCascade(ctx, r.db, r.Generic, []dependent{r.classrooms.asDependent("id_course")}, id)
}

func courseRecord(c *models.Course) Record {
	return Record{
		"name":  c.Name,
		"level": c.Level,
	}
}
