package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadely/academia-api/internal/metrics"
	"github.com/acadely/academia-api/internal/models"
	"github.com/acadely/academia-api/internal/repository"
	appErrors "github.com/acadely/academia-api/pkg/errors"
	"github.com/acadely/academia-api/pkg/response"
)

// CatalogHandler exposes CRUD plus cascade deletion for the catalog
// entities: cycles, classrooms, courses, teachers and students.
type CatalogHandler struct {
	store *repository.Store
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(store *repository.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// searchRecord collects the allowed query parameters into a fuzzy search
// filter. Column names never come from the client unchecked.
func searchRecord(c *gin.Context, columns ...string) repository.Record {
	search := repository.Record{}
	for _, col := range columns {
		if v := c.Query(col); v != "" {
			search[col] = v
		}
	}
	if len(search) == 0 {
		return nil
	}
	return search
}

// --- cycles ---

// CreateCycle stores a new academic cycle.
func (h *CatalogHandler) CreateCycle(c *gin.Context) {
	var cycle models.Cycle
	if err := c.ShouldBindJSON(&cycle); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cycle payload"))
		return
	}
	if err := h.store.Cycles.Create(c.Request.Context(), &cycle); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cycle)
}

// UpdateCycle replaces a cycle's fields.
func (h *CatalogHandler) UpdateCycle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cycle models.Cycle
	if err := c.ShouldBindJSON(&cycle); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cycle payload"))
		return
	}
	cycle.ID = id
	updated, err := h.store.Cycles.Save(c.Request.Context(), &cycle)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "cycle not found"))
		return
	}
	response.JSON(c, http.StatusOK, cycle, nil)
}

// DeleteCycle removes a cycle and its classrooms, inscriptions and
// payments.
func (h *CatalogHandler) DeleteCycle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.store.Cycles.DeleteCascade(c.Request.Context(), id)
	metrics.ObserveCascade("cicle", deleted, err)
	h.finishDelete(c, deleted, err, "cycle not found")
}

// GetCycle returns a single cycle row.
func (h *CatalogHandler) GetCycle(c *gin.Context) {
	h.getRow(c, h.store.Cycles.Generic, "cycle not found")
}

// ListCycles returns cycles, optionally filtered by cicle or manager.
func (h *CatalogHandler) ListCycles(c *gin.Context) {
	h.listRows(c, h.store.Cycles.Generic, searchRecord(c, "cicle", "manager"))
}

// --- classrooms ---

// CreateClassroom stores a new classroom.
func (h *CatalogHandler) CreateClassroom(c *gin.Context) {
	var room models.Classroom
	if err := c.ShouldBindJSON(&room); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid classroom payload"))
		return
	}
	if err := h.store.Classrooms.Create(c.Request.Context(), &room); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room)
}

// UpdateClassroom replaces a classroom's fields.
func (h *CatalogHandler) UpdateClassroom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var room models.Classroom
	if err := c.ShouldBindJSON(&room); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid classroom payload"))
		return
	}
	room.ID = id
	updated, err := h.store.Classrooms.Save(c.Request.Context(), &room)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "classroom not found"))
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// DeleteClassroom removes a classroom with its inscriptions and payments.
func (h *CatalogHandler) DeleteClassroom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.store.Classrooms.DeleteCascade(c.Request.Context(), id)
	metrics.ObserveCascade("classroom", deleted, err)
	h.finishDelete(c, deleted, err, "classroom not found")
}

// GetClassroom returns a single classroom row.
func (h *CatalogHandler) GetClassroom(c *gin.Context) {
	h.getRow(c, h.store.Classrooms.Generic, "classroom not found")
}

// ListClassrooms returns classrooms, optionally filtered by name.
func (h *CatalogHandler) ListClassrooms(c *gin.Context) {
	h.listRows(c, h.store.Classrooms.Generic, searchRecord(c, "name"))
}

// --- courses ---

// CreateCourse stores a new course.
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	if err := h.store.Courses.Create(c.Request.Context(), &course); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// UpdateCourse replaces a course's fields.
func (h *CatalogHandler) UpdateCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course.ID = id
	updated, err := h.store.Courses.Save(c.Request.Context(), &course)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "course not found"))
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// DeleteCourse removes a course with its classrooms, inscriptions and
// payments.
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.store.Courses.DeleteCascade(c.Request.Context(), id)
	metrics.ObserveCascade("course", deleted, err)
	h.finishDelete(c, deleted, err, "course not found")
}

// GetCourse returns a single course row.
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	h.getRow(c, h.store.Courses.Generic, "course not found")
}

// ListCourses returns courses, optionally filtered by name or level.
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	h.listRows(c, h.store.Courses.Generic, searchRecord(c, "name", "level"))
}

// --- teachers ---

// CreateTeacher stores a new teacher.
func (h *CatalogHandler) CreateTeacher(c *gin.Context) {
	var teacher models.Teacher
	if err := c.ShouldBindJSON(&teacher); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher payload"))
		return
	}
	if err := h.store.Teachers.Create(c.Request.Context(), &teacher); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher)
}

// UpdateTeacher replaces a teacher's fields.
func (h *CatalogHandler) UpdateTeacher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var teacher models.Teacher
	if err := c.ShouldBindJSON(&teacher); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher payload"))
		return
	}
	teacher.ID = id
	updated, err := h.store.Teachers.Save(c.Request.Context(), &teacher)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "teacher not found"))
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil)
}

// DeleteTeacher removes a teacher with their classrooms, inscriptions and
// payments.
func (h *CatalogHandler) DeleteTeacher(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.store.Teachers.DeleteCascade(c.Request.Context(), id)
	metrics.ObserveCascade("teacher", deleted, err)
	h.finishDelete(c, deleted, err, "teacher not found")
}

// GetTeacher returns a single teacher row.
func (h *CatalogHandler) GetTeacher(c *gin.Context) {
	h.getRow(c, h.store.Teachers.Generic, "teacher not found")
}

// ListTeachers returns teachers, optionally filtered by name, lastname or
// phone.
func (h *CatalogHandler) ListTeachers(c *gin.Context) {
	h.listRows(c, h.store.Teachers.Generic, searchRecord(c, "name", "lastname", "phone"))
}

// --- students ---

// CreateStudent stores a new student.
func (h *CatalogHandler) CreateStudent(c *gin.Context) {
	var student models.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	if err := h.store.Students.Create(c.Request.Context(), &student); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// UpdateStudent replaces a student's fields.
func (h *CatalogHandler) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var student models.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	student.ID = id
	updated, err := h.store.Students.Save(c.Request.Context(), &student)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !updated {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "student not found"))
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// DeleteStudent removes the student row only. The student's inscriptions
// stay behind.
func (h *CatalogHandler) DeleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.store.Students.DeleteByID(c.Request.Context(), id)
	h.finishDelete(c, deleted, err, "student not found")
}

// GetStudent returns a single student row.
func (h *CatalogHandler) GetStudent(c *gin.Context) {
	h.getRow(c, h.store.Students.Generic, "student not found")
}

// ListStudents returns students, optionally filtered by name, lastname or
// phone.
func (h *CatalogHandler) ListStudents(c *gin.Context) {
	h.listRows(c, h.store.Students.Generic, searchRecord(c, "name", "lastname", "phone"))
}

// --- shared plumbing ---

func (h *CatalogHandler) getRow(c *gin.Context, g *repository.Generic, notFound string) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := g.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if row == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, notFound))
		return
	}
	response.JSON(c, http.StatusOK, row, nil)
}

func (h *CatalogHandler) listRows(c *gin.Context, g *repository.Generic, search repository.Record) {
	rows, err := g.List(c.Request.Context(), search)
	if err != nil {
		response.Error(c, err)
		return
	}
	if rows == nil {
		rows = []repository.Record{}
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

func (h *CatalogHandler) finishDelete(c *gin.Context, deleted bool, err error, notFound string) {
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, notFound))
		return
	}
	response.NoContent(c)
}
