package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gestor_unad_backend/internal/config"
	"gestor_unad_backend/internal/controller"
	"gestor_unad_backend/internal/repository"
	"gestor_unad_backend/internal/service"
	"gestor_unad_backend/pkg/logger"
	"gestor_unad_backend/pkg/monitoring"
	"gestor_unad_backend/pkg/security"
	"gestor_unad_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	course   *repository.CourseRepository
	task     *repository.TaskRepository
	student  *repository.StudentRepository
	entrega  *repository.EntregaRepository
	progress *repository.SubtaskProgressRepository
}

type services struct {
	course  *service.CourseService
	task    *service.TaskService
	student *service.StudentService
	entrega *service.EntregaService
}

type controllers struct {
	course  *controller.CourseController
	task    *controller.TaskController
	student *controller.StudentController
	entrega *controller.EntregaController
	health  *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		course:   repository.NewCourseRepository(db),
		task:     repository.NewTaskRepository(db),
		student:  repository.NewStudentRepository(db),
		entrega:  repository.NewEntregaRepository(db),
		progress: repository.NewSubtaskProgressRepository(db),
	}
}

func initServices(repos *repositories) *services {
	return &services{
		course:  service.NewCourseService(repos.course, repos.task, repos.student),
		task:    service.NewTaskService(repos.task, repos.progress),
		student: service.NewStudentService(repos.student, repos.entrega),
		entrega: service.NewEntregaService(repos.entrega, repos.student),
	}
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		course:  controller.NewCourseController(s.course),
		task:    controller.NewTaskController(s.task),
		student: controller.NewStudentController(s.student),
		entrega: controller.NewEntregaController(s.entrega),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS())
	router.Use(security.Secure())
	router.Use(security.BodyLimit(cfg.Server.MaxBodyBytes))
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New arma la aplicación sobre una conexión ya abierta; los tests
// inyectan aquí una base sqlite en memoria.
func New(cfg *config.Config, db *gorm.DB) *App {
	a := &App{
		Config: cfg,
		DB:     db,
	}

	repos := initRepositories(db)
	svcs := initServices(repos)
	ctls := initControllers(svcs, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	a.Router = router

	a.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("gestor-unad", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	a.registerRoutes(router, ctls, cfg)

	return a
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
