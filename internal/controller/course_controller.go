package controller

import (
	"errors"

	"gestor_unad_backend/internal/service"
	"gestor_unad_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CreateCourseRequest es el cuerpo de alta de un período.
type CreateCourseRequest struct {
	Period string `json:"period"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// List godoc
// @Summary Listar cursos
// @Description Todos los períodos, ordenados por period
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Router /api/courses [get]
func (ctl *CourseController) List(c *gin.Context) {
	courses, err := ctl.CourseService.List()
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.OK(c, courses)
}

// Create godoc
// @Summary Crear curso
// @Tags courses
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "período nuevo"
// @Success 201 {object} model.Course
// @Failure 400 {object} util.ErrorBody
// @Failure 409 {object} util.ErrorBody
// @Router /api/courses [post]
func (ctl *CourseController) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if req.Period == "" || req.Name == "" {
		util.BadRequest(c, "period y name son obligatorios")
		return
	}
	course, err := ctl.CourseService.Create(req.Period, req.Name, req.Code)
	if err != nil {
		if errors.Is(err, util.ErrDuplicatePeriod) {
			util.Conflict(c, err.Error())
			return
		}
		util.InternalError(c, err)
		return
	}
	util.Created(c, course)
}

// Delete godoc
// @Summary Eliminar curso
// @Description Borra el curso y, en cascada, sus estudiantes y tareas
// @Tags courses
// @Produce json
// @Param id path string true "id del curso"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses/{id} [delete]
func (ctl *CourseController) Delete(c *gin.Context) {
	err := ctl.CourseService.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(c, err.Error())
			return
		}
		util.InternalError(c, err)
		return
	}
	util.OK(c, gin.H{"ok": true})
}
