package service

import (
	"errors"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/repository"
	"gestor_unad_backend/internal/util"

	"gorm.io/gorm"
)

type StudentService struct {
	students *repository.StudentRepository
	entregas *repository.EntregaRepository
}

func NewStudentService(students *repository.StudentRepository, entregas *repository.EntregaRepository) *StudentService {
	return &StudentService{students: students, entregas: entregas}
}

// StudentInput es una fila del import masivo.
type StudentInput struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	WA     string `json:"wa"`
}

// BulkResult cuenta el resultado del import: los duplicados no abortan
// el lote, cualquier otro error sí.
type BulkResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
}

func (s *StudentService) List(course string) ([]*model.Student, error) {
	return s.students.FindAll(course)
}

// BulkImport crea cada estudiante de forma individual. Una violación
// del índice (course, nombre, email) cuenta como duplicado y el
// proceso continúa con el siguiente registro.
func (s *StudentService) BulkImport(course string, inputs []StudentInput) (*BulkResult, error) {
	result := &BulkResult{}
	for _, in := range inputs {
		student := &model.Student{
			Course: course,
			Nombre: in.Nombre,
			Email:  in.Email,
			WA:     in.WA,
		}
		if err := s.students.Create(student); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				result.Duplicates++
				continue
			}
			return nil, err
		}
		result.Imported++
	}
	return result, nil
}

// Delete borra el estudiante y arrastra sus entregas.
func (s *StudentService) Delete(id string) error {
	if _, err := s.students.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStudentNotFound
		}
		return err
	}
	if err := s.students.DeleteByID(id); err != nil {
		return err
	}
	return s.entregas.DeleteByStudent(id)
}

func (s *StudentService) DeleteByCourse(course string) (int64, error) {
	return s.students.DeleteByCourse(course)
}
