package repository

import (
	"testing"

	"gestor_unad_backend/internal/model"
)

func TestTaskFindAll_SortedByDue(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	dues := []string{"2026-05-01", "2026-02-13", "2026-06-17"}
	for _, due := range dues {
		task := &model.Task{Course: "2281", Name: "T " + due, Tipo: model.TipoIndividual, Due: due}
		if err := repo.Create(task); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tasks, err := repo.FindAll("")
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	want := []string{"2026-02-13", "2026-05-01", "2026-06-17"}
	for i, due := range want {
		if tasks[i].Due != due {
			t.Fatalf("position %d: expected due %s, got %s", i, due, tasks[i].Due)
		}
	}
}

func TestTaskFindAll_CourseFilter(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	for _, c := range []string{"2281", "2281", "2104"} {
		if err := repo.Create(&model.Task{Course: c, Name: "T", Tipo: model.TipoIndividual}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tasks, err := repo.FindAll("2281")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks in 2281, got %d", len(tasks))
	}
}

func TestTaskJSONColumnsRoundTrip(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	task := &model.Task{
		Course:   "2281",
		Name:     "Prueba Inicial",
		Tipo:     model.TipoPrueba,
		Momento:  model.MomentoInicial,
		Recursos: []string{"Recurso educativo", "Prueba inicial (campus)"},
		Subtasks: []string{"Revisar recurso", "Realizar la prueba"},
		AIHistory: []model.ChatTurn{
			{Role: "user", Content: "¿Qué evalúa la prueba?"},
			{Role: "assistant", Content: "Saberes previos."},
		},
	}
	if err := repo.Create(task); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(loaded.Recursos) != 2 || loaded.Recursos[1] != "Prueba inicial (campus)" {
		t.Fatalf("recursos lost ordering or content: %v", loaded.Recursos)
	}
	if len(loaded.AIHistory) != 2 || loaded.AIHistory[1].Role != "assistant" {
		t.Fatalf("aiHistory lost content: %v", loaded.AIHistory)
	}
}

func TestTaskDeleteByCourse(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	for _, c := range []string{"2281", "2104"} {
		if err := repo.Create(&model.Task{Course: c, Name: "T", Tipo: model.TipoIndividual}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if err := repo.DeleteByCourse("2281"); err != nil {
		t.Fatalf("delete by course: %v", err)
	}
	rest, _ := repo.FindAll("")
	if len(rest) != 1 || rest[0].Course != "2104" {
		t.Fatalf("only 2104 tasks should remain")
	}
}
