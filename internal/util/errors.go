package util

import "errors"

var (
	ErrCourseNotFound   = errors.New("Curso no encontrado")
	ErrTaskNotFound     = errors.New("Tarea no encontrada")
	ErrStudentNotFound  = errors.New("Estudiante no encontrado")
	ErrDuplicatePeriod  = errors.New("Ya existe ese período")
	ErrMomentoInvalido  = errors.New("momento inválido")
	ErrTipoInvalido     = errors.New("tipo inválido")
	ErrEstadoInvalido   = errors.New("estado inválido")
	ErrRoleInvalido     = errors.New("role inválido en aiHistory")
	ErrNameRequerido    = errors.New("name es obligatorio")
	ErrCourseRequerido  = errors.New("course es obligatorio")
	ErrEntregaRequerida = errors.New("studentId, taskId y estado son obligatorios")
)
