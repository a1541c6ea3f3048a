package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const cycleSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	cicle CHAR(2),
	date_start DATE,
	date_end DATE,
	manager VARCHAR(100)`

// CycleRepository manages persistence for academic cycles. It owns a
// classroom repository so a cycle deletion can walk classrooms,
// inscriptions and payments bottom-up.
type CycleRepository struct {
	*Generic
	db         *sqlx.DB
	classrooms *ClassroomRepository
}

// NewCycleRepository constructs a CycleRepository.
func NewCycleRepository(db *sqlx.DB, log *zap.Logger) *CycleRepository {
	return &CycleRepository{
		Generic:    NewGeneric(db, "cicle", log),
		db:         db,
		classrooms: NewClassroomRepository(db, log),
	}
}

// CreateTable ensures the cicle table exists.
func (r *CycleRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, cycleSchema)
}

// Create inserts a cycle and assigns the store-generated id.
func (r *CycleRepository) Create(ctx context.Context, c *models.Cycle) error {
	id, err := r.Insert(ctx, cycleRecord(c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Save updates the cycle row identified by its id and reports whether a
// row was changed.
func (r *CycleRepository) Save(ctx context.Context, c *models.Cycle) (bool, error) {
	n, err := r.Update(ctx, cycleRecord(c), Record{"id": c.ID})
	return n > 0, err
}

// DeleteCascade removes the cycle and everything transitively dependent on
// it: payments, then inscriptions, then classrooms, then the cycle row.
func (r *CycleRepository) DeleteCascade(ctx context.Context, id int64) (bool, error) {
	return deleteCascade(ctx, r.db, r.Generic, []dependent{r.classrooms.asDependent("id_cicle")}, id)
}

func cycleRecord(c *models.Cycle) Record {
	return Record{
		"cicle":      c.Code,
		"date_start": c.DateStart,
		"date_end":   c.DateEnd,
		"manager":    c.Manager,
	}
}
