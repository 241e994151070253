package model

import "gorm.io/datatypes"

// Momento es la fase de evaluación a la que pertenece una tarea.
type Momento string

const (
	MomentoInicial    Momento = "Inicial"
	MomentoIntermedio Momento = "Intermedio"
	MomentoFinal      Momento = "Final"
	MomentoNinguno    Momento = ""
)

func (m Momento) Valid() bool {
	switch m {
	case MomentoInicial, MomentoIntermedio, MomentoFinal, MomentoNinguno:
		return true
	}
	return false
}

// Tipo de actividad: individual, colaborativa o prueba.
type Tipo string

const (
	TipoIndividual   Tipo = "ind"
	TipoColaborativa Tipo = "col"
	TipoPrueba       Tipo = "prueba"
)

func (t Tipo) Valid() bool {
	switch t {
	case TipoIndividual, TipoColaborativa, TipoPrueba:
		return true
	}
	return false
}

// ChatTurn es un turno del historial de conversación con la IA
// adjunto a la tarea.
type ChatTurn struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

type Task struct {
	UUIDBase
	Course    string                        `gorm:"size:16;index;not null" json:"course"` // period, ej. '2281'
	Momento   Momento                       `gorm:"size:16;not null;default:''" json:"momento"`
	Name      string                        `gorm:"size:255;not null" json:"name"`
	Tipo      Tipo                          `gorm:"size:16;not null;default:'ind'" json:"tipo"`
	Pts       float64                       `gorm:"not null;default:0" json:"pts"`
	Due       string                        `gorm:"size:10" json:"due"` // 'YYYY-MM-DD'
	Desc      string                        `gorm:"type:text" json:"desc"`
	Recursos  datatypes.JSONSlice[string]   `json:"recursos"`
	Subtasks  datatypes.JSONSlice[string]   `json:"subtasks"`
	CampusURL string                        `gorm:"size:512" json:"campusUrl"`
	Notes     string                        `gorm:"type:text" json:"notes"`
	Done      bool                          `gorm:"not null;default:false" json:"done"`
	AIHistory datatypes.JSONSlice[ChatTurn] `json:"aiHistory"`
}

func (Task) TableName() string {
	return "tasks"
}
