package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadely/academia-api/internal/models"
)

type tree struct {
	cycle        *models.Cycle
	roomA, roomB *models.Classroom
	inscA, inscB *models.Inscription
	payA, payB   *models.Payment
}

// seedTree builds one cycle with two classrooms, one inscription per
// classroom and one payment per inscription.
func seedTree(t *testing.T, store *Store) tree {
	t.Helper()
	ctx := context.Background()

	cycle := &models.Cycle{Code: "A", DateStart: "2024-01-01", DateEnd: "2024-06-30", Manager: "Ana"}
	require.NoError(t, store.Cycles.Create(ctx, cycle))

	roomA := &models.Classroom{Name: "Alpha", StartDate: "2024-01-01", EndDate: "2024-06-30", TeacherID: 1, CourseID: 1, CycleID: cycle.ID}
	roomB := &models.Classroom{Name: "Beta", StartDate: "2024-01-01", EndDate: "2024-06-30", TeacherID: 2, CourseID: 2, CycleID: cycle.ID}
	require.NoError(t, store.Classrooms.Create(ctx, roomA))
	require.NoError(t, store.Classrooms.Create(ctx, roomB))

	inscA := &models.Inscription{StudentID: 1, ClassroomID: roomA.ID, Year: 2024, Cycle: "A", DateTaken: "2024-01-10", DateInscription: "2024-01-10"}
	inscB := &models.Inscription{StudentID: 2, ClassroomID: roomB.ID, Year: 2024, Cycle: "A", DateTaken: "2024-01-11", DateInscription: "2024-01-11"}
	require.NoError(t, store.Inscriptions.Create(ctx, inscA))
	require.NoError(t, store.Inscriptions.Create(ctx, inscB))

	payA := &models.Payment{MethodPayment: "cash", Amount: 100, InscriptionID: inscA.ID}
	payB := &models.Payment{MethodPayment: "card", Amount: 200, InscriptionID: inscB.ID}
	require.NoError(t, store.Payments.Create(ctx, payA))
	require.NoError(t, store.Payments.Create(ctx, payB))

	return tree{cycle: cycle, roomA: roomA, roomB: roomB, inscA: inscA, inscB: inscB, payA: payA, payB: payB}
}

func TestCycleDeleteCascadesBottomUp(t *testing.T) {
	store := newTestStore(t)
	seedTree(t, store)

	// A second cycle with its own classroom must survive untouched.
	other := &models.Cycle{Code: "B", DateStart: "2024-07-01", DateEnd: "2024-12-31", Manager: "Bea"}
	require.NoError(t, store.Cycles.Create(context.Background(), other))
	otherRoom := &models.Classroom{Name: "Gamma", StartDate: "2024-07-01", EndDate: "2024-12-31", CycleID: other.ID}
	require.NoError(t, store.Classrooms.Create(context.Background(), otherRoom))

	first, err := store.Cycles.First(context.Background(), Record{"cicle": "A"})
	require.NoError(t, err)
	deleted, err := store.Cycles.DeleteCascade(context.Background(), asID(first["id"]))
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 1, countRows(t, store.Cycles.Generic))
	assert.Equal(t, 1, countRows(t, store.Classrooms.Generic))
	assert.Equal(t, 0, countRows(t, store.Inscriptions.Generic))
	assert.Equal(t, 0, countRows(t, store.Payments.Generic))
}

func TestClassroomDeleteCascadesOwnBranchOnly(t *testing.T) {
	store := newTestStore(t)
	tr := seedTree(t, store)
	ctx := context.Background()

	deleted, err := store.Classrooms.DeleteCascade(ctx, tr.roomA.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Sibling branch and the parent cycle stay.
	assert.Equal(t, 1, countRows(t, store.Cycles.Generic))
	assert.Equal(t, 1, countRows(t, store.Classrooms.Generic))
	assert.Equal(t, 1, countRows(t, store.Inscriptions.Generic))
	assert.Equal(t, 1, countRows(t, store.Payments.Generic))

	remaining, err := store.Inscriptions.Get(ctx, tr.inscB.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestCourseDeleteCascadesThroughClassrooms(t *testing.T) {
	store := newTestStore(t)
	tr := seedTree(t, store)
	ctx := context.Background()

	course := &models.Course{Name: "Bible Study", Level: 1}
	require.NoError(t, store.Courses.Create(ctx, course))
	// Rebind roomA to the course we are about to delete.
	_, err := store.Classrooms.Update(ctx, Record{"id_course": course.ID}, Record{"id": tr.roomA.ID})
	require.NoError(t, err)

	deleted, err := store.Courses.DeleteCascade(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 0, countRows(t, store.Courses.Generic))
	assert.Equal(t, 1, countRows(t, store.Classrooms.Generic))
	assert.Equal(t, 1, countRows(t, store.Inscriptions.Generic))
	assert.Equal(t, 1, countRows(t, store.Payments.Generic))
}

func TestTeacherDeleteCascadesThroughClassrooms(t *testing.T) {
	store := newTestStore(t)
	tr := seedTree(t, store)
	ctx := context.Background()

	teacher := &models.Teacher{Name: "Luis", Lastname: "Diaz", Phone: "555", DateBaptism: "2010-01-01", DateOfBirth: "1990-01-01", TeamID: 1}
	require.NoError(t, store.Teachers.Create(ctx, teacher))
	_, err := store.Classrooms.Update(ctx, Record{"id_teacher": teacher.ID}, Record{"id": tr.roomB.ID})
	require.NoError(t, err)

	deleted, err := store.Teachers.DeleteCascade(ctx, teacher.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 0, countRows(t, store.Teachers.Generic))
	assert.Equal(t, 1, countRows(t, store.Classrooms.Generic))
	assert.Equal(t, 1, countRows(t, store.Inscriptions.Generic))
	assert.Equal(t, 1, countRows(t, store.Payments.Generic))
}

func TestDeleteCascadeMissingParent(t *testing.T) {
	store := newTestStore(t)
	seedTree(t, store)

	deleted, err := store.Cycles.DeleteCascade(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Nothing was touched.
	assert.Equal(t, 1, countRows(t, store.Cycles.Generic))
	assert.Equal(t, 2, countRows(t, store.Classrooms.Generic))
	assert.Equal(t, 2, countRows(t, store.Inscriptions.Generic))
	assert.Equal(t, 2, countRows(t, store.Payments.Generic))
}

func TestStudentDeleteLeavesInscriptions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	student := &models.Student{Name: "Pedro", Lastname: "Lopez", Phone: "111", DateBaptism: "2015-01-01", DateOfBirth: "2008-01-01", TeamID: 1}
	require.NoError(t, store.Students.Create(ctx, student))

	insc := &models.Inscription{StudentID: student.ID, ClassroomID: 1, Year: 2024, Cycle: "A", DateTaken: "2024-01-10", DateInscription: "2024-01-10"}
	require.NoError(t, store.Inscriptions.Create(ctx, insc))

	deleted, err := store.Students.DeleteByID(ctx, student.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 0, countRows(t, store.Students.Generic))
	assert.Equal(t, 1, countRows(t, store.Inscriptions.Generic))
}
