package repository

import (
	"gestor_unad_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

// FindAll filtra opcionalmente por period y ordena por nombre.
func (r *StudentRepository) FindAll(course string) ([]*model.Student, error) {
	var students []*model.Student
	query := r.DB.Order("nombre asc")
	if course != "" {
		query = query.Where("course = ?", course)
	}
	err := query.Find(&students).Error
	return students, err
}

func (r *StudentRepository) FindByID(id string) (*model.Student, error) {
	var student model.Student
	err := r.DB.First(&student, "id = ?", id).Error
	return &student, err
}

// FindIDsByCourse resuelve los ids de estudiante de un período, para
// filtrar entregas por curso.
func (r *StudentRepository) FindIDsByCourse(course string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Student{}).Where("course = ?", course).Pluck("id", &ids).Error
	return ids, err
}

func (r *StudentRepository) DeleteByID(id string) error {
	return r.DB.Delete(&model.Student{}, "id = ?", id).Error
}

// DeleteByCourse borra todos los estudiantes del período y devuelve
// cuántos había.
func (r *StudentRepository) DeleteByCourse(course string) (int64, error) {
	result := r.DB.Where("course = ?", course).Delete(&model.Student{})
	return result.RowsAffected, result.Error
}
