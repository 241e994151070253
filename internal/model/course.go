package model

// Course es un período académico del curso 740508.
// El period ('2281', '2104', ...) es la clave de partición que usan
// Task y Student vía su campo `course`.
type Course struct {
	UUIDBase
	Period string `gorm:"size:16;not null;uniqueIndex" json:"period"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Code   string `gorm:"size:32;not null;default:'740508'" json:"code"`
}

func (Course) TableName() string {
	return "courses"
}

const DefaultCourseCode = "740508"
