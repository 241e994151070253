package controller

import (
	"errors"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/service"
	"gestor_unad_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EntregaController struct {
	EntregaService *service.EntregaService
}

func NewEntregaController(entregaService *service.EntregaService) *EntregaController {
	return &EntregaController{EntregaService: entregaService}
}

// UpsertEntregaRequest crea o actualiza el estado de una entrega.
type UpsertEntregaRequest struct {
	StudentID string       `json:"studentId"`
	TaskID    string       `json:"taskId"`
	Estado    model.Estado `json:"estado"`
}

// List godoc
// @Summary Listar entregas
// @Description Filtradas por curso (vía los estudiantes del período) y/o tarea
// @Tags entregas
// @Produce json
// @Param course query string false "period del curso"
// @Param taskId query string false "id de la tarea"
// @Success 200 {array} model.Entrega
// @Router /api/entregas [get]
func (ctl *EntregaController) List(c *gin.Context) {
	entregas, err := ctl.EntregaService.List(c.Query("course"), c.Query("taskId"))
	if err != nil {
		util.InternalError(c, err)
		return
	}
	util.OK(c, entregas)
}

// Upsert godoc
// @Summary Crear o actualizar entrega
// @Description Upsert por (studentId, taskId); el último write gana
// @Tags entregas
// @Accept json
// @Produce json
// @Param request body UpsertEntregaRequest true "estado de entrega"
// @Success 200 {object} model.Entrega
// @Failure 400 {object} util.ErrorBody
// @Router /api/entregas [put]
func (ctl *EntregaController) Upsert(c *gin.Context) {
	var req UpsertEntregaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	entrega, err := ctl.EntregaService.Upsert(req.StudentID, req.TaskID, req.Estado)
	if err != nil {
		if errors.Is(err, util.ErrEntregaRequerida) || errors.Is(err, util.ErrEstadoInvalido) {
			util.BadRequest(c, err.Error())
			return
		}
		util.InternalError(c, err)
		return
	}
	util.OK(c, entrega)
}
