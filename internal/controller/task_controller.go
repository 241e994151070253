package controller

import (
	"errors"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/service"
	"gestor_unad_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

func mapTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTaskNotFound):
		util.NotFound(c, err.Error())
	case errors.Is(err, util.ErrCourseRequerido),
		errors.Is(err, util.ErrNameRequerido),
		errors.Is(err, util.ErrMomentoInvalido),
		errors.Is(err, util.ErrTipoInvalido),
		errors.Is(err, util.ErrRoleInvalido):
		util.BadRequest(c, err.Error())
	default:
		util.InternalError(c, err)
	}
}

// List godoc
// @Summary Listar tareas
// @Description Opcionalmente filtradas por curso, ordenadas por fecha límite
// @Tags tasks
// @Produce json
// @Param course query string false "period del curso"
// @Success 200 {array} model.Task
// @Router /api/tasks [get]
func (ctl *TaskController) List(c *gin.Context) {
	tasks, err := ctl.TaskService.List(c.Query("course"))
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.OK(c, tasks)
}

// Create godoc
// @Summary Crear tarea
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body model.Task true "tarea"
// @Success 201 {object} model.Task
// @Failure 400 {object} util.ErrorBody
// @Router /api/tasks [post]
func (ctl *TaskController) Create(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	created, err := ctl.TaskService.Create(&task)
	if err != nil {
		mapTaskError(c, err)
		return
	}
	util.Created(c, created)
}

// Replace godoc
// @Summary Reemplazar tarea
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "id de la tarea"
// @Param request body model.Task true "tarea completa"
// @Success 200 {object} model.Task
// @Failure 404 {object} util.ErrorBody
// @Router /api/tasks/{id} [put]
func (ctl *TaskController) Replace(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	updated, err := ctl.TaskService.Replace(c.Param("id"), &task)
	if err != nil {
		mapTaskError(c, err)
		return
	}
	util.OK(c, updated)
}

// Patch godoc
// @Summary Actualización parcial de tarea
// @Description Solo campos de la lista blanca (done, notes, aiHistory, ...)
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "id de la tarea"
// @Param request body service.TaskPatch true "campos a cambiar"
// @Success 200 {object} model.Task
// @Failure 404 {object} util.ErrorBody
// @Router /api/tasks/{id} [patch]
func (ctl *TaskController) Patch(c *gin.Context) {
	var patch service.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	updated, err := ctl.TaskService.Patch(c.Param("id"), &patch)
	if err != nil {
		mapTaskError(c, err)
		return
	}
	util.OK(c, updated)
}

// Delete godoc
// @Summary Eliminar tarea
// @Description Borra la tarea y su registro de progreso de subtareas
// @Tags tasks
// @Produce json
// @Param id path string true "id de la tarea"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} util.ErrorBody
// @Router /api/tasks/{id} [delete]
func (ctl *TaskController) Delete(c *gin.Context) {
	if err := ctl.TaskService.Delete(c.Param("id")); err != nil {
		mapTaskError(c, err)
		return
	}
	util.OK(c, gin.H{"ok": true})
}

// ProgressRequest es el cuerpo del PUT de progreso.
type ProgressRequest struct {
	DoneItems []int `json:"doneItems"`
}

// GetProgress godoc
// @Summary Progreso de subtareas
// @Description Índices marcados; sin registro devuelve lista vacía
// @Tags tasks
// @Produce json
// @Param id path string true "id de la tarea"
// @Success 200 {object} ProgressRequest
// @Router /api/tasks/{id}/progress [get]
func (ctl *TaskController) GetProgress(c *gin.Context) {
	doneItems, err := ctl.TaskService.GetProgress(c.Param("id"))
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.OK(c, gin.H{"doneItems": doneItems})
}

// PutProgress godoc
// @Summary Reemplazar progreso de subtareas
// @Description Upsert que pisa doneItems completo (no merge)
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "id de la tarea"
// @Param request body ProgressRequest true "índices marcados"
// @Success 200 {object} model.SubtaskProgress
// @Router /api/tasks/{id}/progress [put]
func (ctl *TaskController) PutProgress(c *gin.Context) {
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	sp, err := ctl.TaskService.PutProgress(c.Param("id"), req.DoneItems)
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.OK(c, sp)
}
