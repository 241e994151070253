package controller

import (
	"encoding/json"
	"errors"

	"gestor_unad_backend/internal/service"
	"gestor_unad_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

// BulkImportRequest importa un lote de estudiantes a un curso.
// Students es json.RawMessage para distinguir "ausente / no-array"
// (400) de un array vacío válido.
type BulkImportRequest struct {
	Course   string          `json:"course"`
	Students json.RawMessage `json:"students"`
}

// List godoc
// @Summary Listar estudiantes
// @Description Opcionalmente filtrados por curso, ordenados por nombre
// @Tags students
// @Produce json
// @Param course query string false "period del curso"
// @Success 200 {array} model.Student
// @Router /api/students [get]
func (ctl *StudentController) List(c *gin.Context) {
	students, err := ctl.StudentService.List(c.Query("course"))
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.OK(c, students)
}

// BulkImport godoc
// @Summary Importar estudiantes
// @Description Alta individual por registro; los duplicados se cuentan y no abortan el lote
// @Tags students
// @Accept json
// @Produce json
// @Param request body BulkImportRequest true "curso y estudiantes"
// @Success 201 {object} service.BulkResult
// @Failure 400 {object} util.ErrorBody
// @Router /api/students/bulk [post]
func (ctl *StudentController) BulkImport(c *gin.Context) {
	var req BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	var inputs []service.StudentInput
	if req.Course == "" || req.Students == nil || json.Unmarshal(req.Students, &inputs) != nil {
		util.BadRequest(c, "Se requiere course y students[]")
		return
	}

	result, err := ctl.StudentService.BulkImport(req.Course, inputs)
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.Created(c, result)
}

// Delete godoc
// @Summary Eliminar estudiante
// @Description Borra el estudiante y, en cascada, sus entregas
// @Tags students
// @Produce json
// @Param id path string true "id del estudiante"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} util.ErrorBody
// @Router /api/students/{id} [delete]
func (ctl *StudentController) Delete(c *gin.Context) {
	err := ctl.StudentService.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(c, err.Error())
			return
		}
		util.InternalError(c, err)
		return
	}
	util.OK(c, gin.H{"ok": true})
}

// DeleteByCourse godoc
// @Summary Eliminar estudiantes de un curso
// @Tags students
// @Produce json
// @Param courseId path string true "period del curso"
// @Success 200 {object} map[string]int64
// @Router /api/students/course/{courseId} [delete]
func (ctl *StudentController) DeleteByCourse(c *gin.Context) {
	deleted, err := ctl.StudentService.DeleteByCourse(c.Param("courseId"))
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.OK(c, gin.H{"deleted": deleted})
}
