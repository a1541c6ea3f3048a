package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Store bundles every entity repository over one database handle and owns
// the startup bootstrap.
type Store struct {
	Users        *UserRepository
	Teams        *TeamRepository
	Students     *StudentRepository
	Teachers     *TeacherRepository
	Courses      *CourseRepository
	Classrooms   *ClassroomRepository
	Cycles       *CycleRepository
	Inscriptions *InscriptionRepository
	Payments     *PaymentRepository

	log *zap.Logger
}

// NewStore constructs all repositories over the shared handle.
func NewStore(db *sqlx.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	inscriptions := NewInscriptionRepository(db, log)
	return &Store{
		Users:        NewUserRepository(db, log),
		Teams:        NewTeamRepository(db, log),
		Students:     NewStudentRepository(db, log),
		Teachers:     NewTeacherRepository(db, log),
		Courses:      NewCourseRepository(db, log),
		Classrooms:   NewClassroomRepository(db, log),
		Cycles:       NewCycleRepository(db, log),
		Inscriptions: inscriptions,
		Payments:     inscriptions.Payments(),
		log:          log,
	}
}

// Bootstrap creates every table and seeds the default administrator
// account when it does not exist yet. Safe to run on every startup.
func (s *Store) Bootstrap(ctx context.Context, adminUser, adminRole, adminPassword string) error {
	creators := []func(context.Context) error{
		s.Users.CreateTable,
		s.Teams.CreateTable,
		s.Students.CreateTable,
		s.Teachers.CreateTable,
		s.Courses.CreateTable,
		s.Classrooms.CreateTable,
		s.Cycles.CreateTable,
		s.Inscriptions.CreateTable,
		s.Payments.CreateTable,
	}
	for _, create := range creators {
		if err := create(ctx); err != nil {
			return err
		}
	}

	if adminUser == "" {
		return nil
	}

	exists, err := s.Users.Exists(ctx, adminUser)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.Users.CreateUser(ctx, adminUser, adminRole, adminPassword); err != nil {
		return err
	}
	s.log.Info("seeded default administrator", zap.String("user", adminUser))
	return nil
}
