package repository

import (
	"time"

	"gestor_unad_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntregaRepository struct {
	DB *gorm.DB
}

func NewEntregaRepository(db *gorm.DB) *EntregaRepository {
	return &EntregaRepository{DB: db}
}

// Find filtra por conjunto de estudiantes y/o tarea. studentIDs nil
// significa sin filtro por curso; vacío significa curso sin alumnos
// (resultado vacío).
func (r *EntregaRepository) Find(studentIDs []string, taskID string) ([]*model.Entrega, error) {
	var entregas []*model.Entrega
	query := r.DB
	if studentIDs != nil {
		query = query.Where("student_id IN ?", studentIDs)
	}
	if taskID != "" {
		query = query.Where("task_id = ?", taskID)
	}
	err := query.Find(&entregas).Error
	return entregas, err
}

func (r *EntregaRepository) FindByStudentAndTask(studentID, taskID string) (*model.Entrega, error) {
	var entrega model.Entrega
	err := r.DB.First(&entrega, "student_id = ? AND task_id = ?", studentID, taskID).Error
	return &entrega, err
}

// Upsert crea o pisa el estado del par (studentId, taskId). El índice
// único resuelve la carrera entre dos escrituras concurrentes: gana la
// última, sin control optimista.
func (r *EntregaRepository) Upsert(studentID, taskID string, estado model.Estado) (*model.Entrega, error) {
	entrega := &model.Entrega{
		StudentID: studentID,
		TaskID:    taskID,
		Estado:    estado,
	}
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "task_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"estado":     estado,
			"updated_at": time.Now(),
		}),
	}).Create(entrega).Error
	if err != nil {
		return nil, err
	}
	return r.FindByStudentAndTask(studentID, taskID)
}

func (r *EntregaRepository) DeleteByStudent(studentID string) error {
	return r.DB.Where("student_id = ?", studentID).Delete(&model.Entrega{}).Error
}
