package service

import (
	"errors"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/repository"
	"gestor_unad_backend/internal/util"
	"gestor_unad_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseService struct {
	courses  *repository.CourseRepository
	tasks    *repository.TaskRepository
	students *repository.StudentRepository
}

func NewCourseService(courses *repository.CourseRepository, tasks *repository.TaskRepository, students *repository.StudentRepository) *CourseService {
	return &CourseService{courses: courses, tasks: tasks, students: students}
}

func (s *CourseService) List() ([]*model.Course, error) {
	return s.courses.FindAll()
}

func (s *CourseService) Create(period, name, code string) (*model.Course, error) {
	if code == "" {
		code = model.DefaultCourseCode
	}
	course := &model.Course{
		Period: period,
		Name:   name,
		Code:   code,
	}
	if err := s.courses.Create(course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrDuplicatePeriod
		}
		return nil, err
	}
	return course, nil
}

// Delete borra el curso y arrastra sus estudiantes y tareas (las que
// comparten el period). La cascada es secuencial, sin transacción: un
// fallo intermedio deja huérfanos.
func (s *CourseService) Delete(id string) error {
	course, err := s.courses.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	if err := s.courses.DeleteByID(id); err != nil {
		return err
	}
	if _, err := s.students.DeleteByCourse(course.Period); err != nil {
		logger.Log.Error("cascada de estudiantes incompleta",
			zap.String("period", course.Period), zap.Error(err))
		return err
	}
	if err := s.tasks.DeleteByCourse(course.Period); err != nil {
		logger.Log.Error("cascada de tareas incompleta",
			zap.String("period", course.Period), zap.Error(err))
		return err
	}
	return nil
}
