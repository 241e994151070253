package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Status godoc
// @Summary Estado del servicio
// @Description Liveness más el estado de la conexión a la base de datos
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthController) Status(c *gin.Context) {
	db := "disconnected"
	if sqlDB, err := h.DB.DB(); err == nil {
		if err := sqlDB.Ping(); err == nil {
			db = "connected"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"app":     "Gestor UNAD 740508 API",
		"version": "1.0.0",
		"db":      db,
	})
}
