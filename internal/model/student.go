package model

// Student pertenece a un período vía `course`. La tripleta
// (course, nombre, email) es única: el import masivo cuenta como
// duplicado toda fila que la repita.
type Student struct {
	UUIDBase
	Course string `gorm:"size:16;not null;uniqueIndex:idx_students_identity,priority:1" json:"course"`
	Nombre string `gorm:"size:191;not null;uniqueIndex:idx_students_identity,priority:2" json:"nombre"`
	Email  string `gorm:"size:191;not null;default:'';uniqueIndex:idx_students_identity,priority:3" json:"email"`
	WA     string `gorm:"column:wa;size:32;not null;default:''" json:"wa"` // número de WhatsApp
}

func (Student) TableName() string {
	return "students"
}
