package repository

import (
	"gestor_unad_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// FindAll ordena por period ascendente.
func (r *CourseRepository) FindAll() ([]*model.Course, error) {
	var courses []*model.Course
	err := r.DB.Order("period asc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	return &course, err
}

func (r *CourseRepository) DeleteByID(id string) error {
	return r.DB.Delete(&model.Course{}, "id = ?", id).Error
}

// DeleteAll vacía la colección; solo lo usa el seed.
func (r *CourseRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Course{}).Error
}
