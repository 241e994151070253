package seed

import (
	"fmt"
	"testing"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func TestRun_InsertsDataset(t *testing.T) {
	db := newTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var courses []model.Course
	if err := db.Order("period asc").Find(&courses).Error; err != nil {
		t.Fatalf("find courses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].Period != "2104" || courses[1].Period != "2281" {
		t.Fatalf("unexpected periods: %s, %s", courses[0].Period, courses[1].Period)
	}
	for _, c := range courses {
		if c.Code != model.DefaultCourseCode {
			t.Fatalf("course %s: expected code 740508, got %s", c.Period, c.Code)
		}
	}

	var tasks []model.Task
	if err := db.Find(&tasks).Error; err != nil {
		t.Fatalf("find tasks: %v", err)
	}
	if len(tasks) != 16 {
		t.Fatalf("expected 16 tasks, got %d", len(tasks))
	}

	perCourse := map[string]int{}
	for _, task := range tasks {
		perCourse[task.Course]++
		if task.CampusURL != campusURLs[task.Course] {
			t.Fatalf("task %q: campus url %q does not match its course", task.Name, task.CampusURL)
		}
		if task.Done {
			t.Fatalf("seeded tasks start pending")
		}
		if task.Recursos == nil || task.Subtasks == nil || task.AIHistory == nil {
			t.Fatalf("task %q: list fields must be empty, not null", task.Name)
		}
	}
	if perCourse["2281"] != 8 || perCourse["2104"] != 8 {
		t.Fatalf("expected 8 tasks per period, got %v", perCourse)
	}
}

func TestRun_IsDestructiveAndRepeatable(t *testing.T) {
	db := newTestDB(t)

	// Datos viejos que el seed debe arrasar.
	stale := model.Course{Period: "0000", Name: "Curso viejo"}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("stale course: %v", err)
	}
	if err := db.Create(&model.Task{Course: "0000", Name: "Tarea vieja", Tipo: model.TipoIndividual}).Error; err != nil {
		t.Fatalf("stale task: %v", err)
	}

	if err := Run(db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var courseCount, taskCount int64
	db.Model(&model.Course{}).Count(&courseCount)
	db.Model(&model.Task{}).Count(&taskCount)
	if courseCount != 2 || taskCount != 16 {
		t.Fatalf("rerun must leave exactly 2 courses and 16 tasks, got %d/%d", courseCount, taskCount)
	}

	var gone int64
	db.Model(&model.Course{}).Where("period = ?", "0000").Count(&gone)
	if gone != 0 {
		t.Fatalf("stale course must be wiped")
	}
}
