package service

import (
	"errors"
	"testing"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/util"
)

func TestCourseCreate_DefaultCode(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCourseService(env.courses, env.tasks, env.students)

	course, err := svc.Create("2281", "ETI V", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if course.Code != "740508" {
		t.Fatalf("expected default code 740508, got %q", course.Code)
	}
}

func TestCourseCreate_DuplicateMapsToSentinel(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCourseService(env.courses, env.tasks, env.students)

	if _, err := svc.Create("2281", "ETI V", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create("2281", "ETI V otra vez", "")
	if !errors.Is(err, util.ErrDuplicatePeriod) {
		t.Fatalf("expected ErrDuplicatePeriod, got %v", err)
	}
}

func TestCourseDelete_CascadesExactlyItsPeriod(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCourseService(env.courses, env.tasks, env.students)

	course, err := svc.Create("2281", "ETI V", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create("2104", "ETI V", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, s := range []*model.Student{
		{Course: "2281", Nombre: "Ana", Email: "a@x.co"},
		{Course: "2104", Nombre: "Beto", Email: "b@x.co"},
	} {
		if err := env.students.Create(s); err != nil {
			t.Fatalf("student: %v", err)
		}
	}
	for _, c := range []string{"2281", "2104"} {
		if err := env.tasks.Create(&model.Task{Course: c, Name: "T", Tipo: model.TipoIndividual}); err != nil {
			t.Fatalf("task: %v", err)
		}
	}

	if err := svc.Delete(course.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	students, _ := env.students.FindAll("")
	if len(students) != 1 || students[0].Course != "2104" {
		t.Fatalf("cascade must remove only 2281 students, got %v", students)
	}
	tasks, _ := env.tasks.FindAll("")
	if len(tasks) != 1 || tasks[0].Course != "2104" {
		t.Fatalf("cascade must remove only 2281 tasks, got %v", tasks)
	}
}

func TestCourseDelete_NotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCourseService(env.courses, env.tasks, env.students)

	err := svc.Delete("no-such-id")
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
