package service

import (
	"errors"
	"testing"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/util"
)

func TestBulkImport_CountsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	svc := NewStudentService(env.students, env.entregas)

	// Dos ya existen con la misma tripleta (course, nombre, email).
	for _, s := range []*model.Student{
		{Course: "2281", Nombre: "Ana", Email: "a@x.co"},
		{Course: "2281", Nombre: "Beto", Email: "b@x.co"},
	} {
		if err := env.students.Create(s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	result, err := svc.BulkImport("2281", []StudentInput{
		{Nombre: "Ana", Email: "a@x.co"},
		{Nombre: "Beto", Email: "b@x.co"},
		{Nombre: "Caro", Email: "c@x.co", WA: "+573001112233"},
		{Nombre: "Dani", Email: "d@x.co"},
	})
	if err != nil {
		t.Fatalf("bulk import: %v", err)
	}
	if result.Imported != 2 || result.Duplicates != 2 {
		t.Fatalf("expected {imported:2, duplicates:2}, got %+v", result)
	}

	students, _ := env.students.FindAll("2281")
	if len(students) != 4 {
		t.Fatalf("store must end with 4 students, got %d", len(students))
	}
}

func TestBulkImport_DuplicateWithinBatch(t *testing.T) {
	env := newTestEnv(t)
	svc := NewStudentService(env.students, env.entregas)

	result, err := svc.BulkImport("2281", []StudentInput{
		{Nombre: "Ana", Email: "a@x.co"},
		{Nombre: "Ana", Email: "a@x.co"},
	})
	if err != nil {
		t.Fatalf("bulk import: %v", err)
	}
	if result.Imported != 1 || result.Duplicates != 1 {
		t.Fatalf("expected {imported:1, duplicates:1}, got %+v", result)
	}
}

func TestStudentDelete_CascadesEntregas(t *testing.T) {
	env := newTestEnv(t)
	svc := NewStudentService(env.students, env.entregas)

	ana := &model.Student{Course: "2281", Nombre: "Ana", Email: "a@x.co"}
	if err := env.students.Create(ana); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := env.entregas.Upsert(ana.ID, "task-1", model.EstadoEntrego); err != nil {
		t.Fatalf("entrega: %v", err)
	}

	if err := svc.Delete(ana.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rest, _ := env.entregas.Find(nil, "")
	if len(rest) != 0 {
		t.Fatalf("entregas must be gone with the student, got %v", rest)
	}
}

func TestStudentDelete_NotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewStudentService(env.students, env.entregas)

	if err := svc.Delete("no-such-id"); !errors.Is(err, util.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
