package model

import "gorm.io/datatypes"

// SubtaskProgress guarda los índices de subtareas marcadas de una
// tarea. Un registro por tarea; el PUT reemplaza doneItems completo
// (no hay merge). Sin registro, el progreso se lee como vacío.
type SubtaskProgress struct {
	UUIDBase
	TaskID    string                   `gorm:"type:varchar(36);not null;uniqueIndex" json:"taskId"`
	DoneItems datatypes.JSONSlice[int] `json:"doneItems"`
}

func (SubtaskProgress) TableName() string {
	return "subtask_progress"
}
