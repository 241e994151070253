package repository

import (
	"testing"

	"gestor_unad_backend/internal/model"
)

func TestEntregaUpsert_CreatesThenOverwrites(t *testing.T) {
	repo := NewEntregaRepository(newTestDB(t))

	first, err := repo.Upsert("student-1", "task-1", model.EstadoPendiente)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.Estado != model.EstadoPendiente {
		t.Fatalf("expected pendiente, got %s", first.Estado)
	}

	second, err := repo.Upsert("student-1", "task-1", model.EstadoEntrego)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.Estado != model.EstadoEntrego {
		t.Fatalf("expected entrego after overwrite, got %s", second.Estado)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert must keep the original row, ids %s vs %s", first.ID, second.ID)
	}

	all, err := repo.Find(nil, "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one row per (student,task), got %d", len(all))
	}
}

func TestEntregaUpsert_Idempotent(t *testing.T) {
	repo := NewEntregaRepository(newTestDB(t))

	if _, err := repo.Upsert("s", "t", model.EstadoInactivo); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	entrega, err := repo.Upsert("s", "t", model.EstadoInactivo)
	if err != nil {
		t.Fatalf("repeat upsert: %v", err)
	}
	if entrega.Estado != model.EstadoInactivo {
		t.Fatalf("expected inactivo, got %s", entrega.Estado)
	}
}

func TestEntregaFind_Filters(t *testing.T) {
	repo := NewEntregaRepository(newTestDB(t))

	pairs := []struct{ student, task string }{
		{"s1", "t1"},
		{"s1", "t2"},
		{"s2", "t1"},
	}
	for _, p := range pairs {
		if _, err := repo.Upsert(p.student, p.task, model.EstadoPendiente); err != nil {
			t.Fatalf("upsert %v: %v", p, err)
		}
	}

	byStudents, err := repo.Find([]string{"s1"}, "")
	if err != nil {
		t.Fatalf("find by students: %v", err)
	}
	if len(byStudents) != 2 {
		t.Fatalf("expected 2 for s1, got %d", len(byStudents))
	}

	byTask, err := repo.Find(nil, "t1")
	if err != nil {
		t.Fatalf("find by task: %v", err)
	}
	if len(byTask) != 2 {
		t.Fatalf("expected 2 for t1, got %d", len(byTask))
	}

	both, err := repo.Find([]string{"s2"}, "t1")
	if err != nil {
		t.Fatalf("find by both: %v", err)
	}
	if len(both) != 1 {
		t.Fatalf("expected 1 for s2+t1, got %d", len(both))
	}

	// Lista vacía de estudiantes = curso sin alumnos, no "sin filtro".
	none, err := repo.Find([]string{}, "")
	if err != nil {
		t.Fatalf("find with empty set: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result for empty student set, got %d", len(none))
	}
}

func TestEntregaDeleteByStudent(t *testing.T) {
	repo := NewEntregaRepository(newTestDB(t))

	if _, err := repo.Upsert("s1", "t1", model.EstadoPendiente); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := repo.Upsert("s2", "t1", model.EstadoPendiente); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.DeleteByStudent("s1"); err != nil {
		t.Fatalf("delete by student: %v", err)
	}

	rest, _ := repo.Find(nil, "")
	if len(rest) != 1 || rest[0].StudentID != "s2" {
		t.Fatalf("only s2 should remain, got %v", rest)
	}
}
