package model

// Estado de entrega de un estudiante en una tarea.
type Estado string

const (
	EstadoPendiente Estado = "pendiente"
	EstadoEntrego   Estado = "entrego"
	EstadoInactivo  Estado = "inactivo"
)

func (e Estado) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoEntrego, EstadoInactivo:
		return true
	}
	return false
}

// Entrega cruza un Student con una Task. Única por par
// (studentId, taskId); se escribe por upsert y el último
// write gana. Cualquier estado puede seguir a cualquier otro.
type Entrega struct {
	UUIDBase
	StudentID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_entregas_student_task,priority:1" json:"studentId"`
	TaskID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_entregas_student_task,priority:2" json:"taskId"`
	Estado    Estado `gorm:"size:16;not null;default:'pendiente'" json:"estado"`
}

func (Entrega) TableName() string {
	return "entregas"
}
