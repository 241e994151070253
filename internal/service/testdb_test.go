package service

import (
	"fmt"
	"testing"

	"gestor_unad_backend/internal/repository"
	"gestor_unad_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	courses  *repository.CourseRepository
	tasks    *repository.TaskRepository
	students *repository.StudentRepository
	entregas *repository.EntregaRepository
	progress *repository.SubtaskProgressRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &testEnv{
		db:       db,
		courses:  repository.NewCourseRepository(db),
		tasks:    repository.NewTaskRepository(db),
		students: repository.NewStudentRepository(db),
		entregas: repository.NewEntregaRepository(db),
		progress: repository.NewSubtaskProgressRepository(db),
	}
}
