package repository

import (
	"errors"
	"testing"

	"gestor_unad_backend/internal/model"

	"gorm.io/gorm"
)

func TestCourseCreate_DuplicatePeriod(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	first := &model.Course{Period: "2281", Name: "ETI V", Code: "740508"}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := &model.Course{Period: "2281", Name: "Otro nombre"}
	err := repo.Create(second)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	courses, err := repo.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].Name != "ETI V" {
		t.Fatalf("store should retain the first write, got %q", courses[0].Name)
	}
}

func TestCourseFindAll_SortedByPeriod(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	for _, p := range []string{"2281", "2104", "2190"} {
		if err := repo.Create(&model.Course{Period: p, Name: "ETI V"}); err != nil {
			t.Fatalf("create %s: %v", p, err)
		}
	}

	courses, err := repo.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	want := []string{"2104", "2190", "2281"}
	for i, p := range want {
		if courses[i].Period != p {
			t.Fatalf("position %d: expected %s, got %s", i, p, courses[i].Period)
		}
	}
}

func TestCourseCreate_AssignsIdentity(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	course := &model.Course{Period: "9999", Name: "Test", Code: "740508"}
	if err := repo.Create(course); err != nil {
		t.Fatalf("create: %v", err)
	}
	if course.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if course.CreatedAt.IsZero() || course.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestCourseFindByID_NotFound(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	_, err := repo.FindByID("no-such-id")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
