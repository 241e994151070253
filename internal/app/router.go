package app

import (
	"gestor_unad_backend/docs"
	"gestor_unad_backend/internal/config"
	"gestor_unad_backend/internal/middleware"
	"gestor_unad_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Health check sin auth: el frontend lo usa para saber si hay backend.
	router.GET("/", c.health.Status)

	// Todas las rutas /api pasan por el gate de x-api-secret.
	api := router.Group("/api")
	api.Use(middleware.APISecret(cfg))
	{
		api.GET("/courses", c.course.List)
		api.POST("/courses", c.course.Create)
		api.DELETE("/courses/:id", c.course.Delete)

		api.GET("/tasks", c.task.List)
		api.POST("/tasks", c.task.Create)
		api.PUT("/tasks/:id", c.task.Replace)
		api.PATCH("/tasks/:id", c.task.Patch)
		api.DELETE("/tasks/:id", c.task.Delete)
		api.GET("/tasks/:id/progress", c.task.GetProgress)
		api.PUT("/tasks/:id/progress", c.task.PutProgress)

		api.GET("/students", c.student.List)
		api.POST("/students/bulk", c.student.BulkImport)
		api.DELETE("/students/:id", c.student.Delete)
		api.DELETE("/students/course/:courseId", c.student.DeleteByCourse)

		api.GET("/entregas", c.entrega.List)
		api.PUT("/entregas", c.entrega.Upsert)
	}
}
