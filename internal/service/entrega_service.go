package service

import (
	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/repository"
	"gestor_unad_backend/internal/util"
)

type EntregaService struct {
	entregas *repository.EntregaRepository
	students *repository.StudentRepository
}

func NewEntregaService(entregas *repository.EntregaRepository, students *repository.StudentRepository) *EntregaService {
	return &EntregaService{entregas: entregas, students: students}
}

// List filtra por curso (resolviendo primero los ids de estudiante del
// período) y/o por tarea. Un curso sin estudiantes devuelve lista
// vacía, no todas las entregas.
func (s *EntregaService) List(course, taskID string) ([]*model.Entrega, error) {
	var studentIDs []string
	if course != "" {
		ids, err := s.students.FindIDsByCourse(course)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []string{}
		}
		studentIDs = ids
	}
	return s.entregas.Find(studentIDs, taskID)
}

// Upsert crea o actualiza el estado del par (studentId, taskId).
// Cualquier transición de estado es válida.
func (s *EntregaService) Upsert(studentID, taskID string, estado model.Estado) (*model.Entrega, error) {
	if studentID == "" || taskID == "" || estado == "" {
		return nil, util.ErrEntregaRequerida
	}
	if !estado.Valid() {
		return nil, util.ErrEstadoInvalido
	}
	return s.entregas.Upsert(studentID, taskID, estado)
}
