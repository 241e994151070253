package repository

import (
	"gestor_unad_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Create(task *model.Task) error {
	return r.DB.Create(task).Error
}

func (r *TaskRepository) CreateBatch(tasks []*model.Task) error {
	return r.DB.Create(tasks).Error
}

// FindAll filtra opcionalmente por period y ordena por fecha límite.
// El formato 'YYYY-MM-DD' ordena cronológicamente como texto.
func (r *TaskRepository) FindAll(course string) ([]*model.Task, error) {
	var tasks []*model.Task
	query := r.DB.Order("due asc")
	if course != "" {
		query = query.Where("course = ?", course)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(id string) (*model.Task, error) {
	var task model.Task
	err := r.DB.First(&task, "id = ?", id).Error
	return &task, err
}

func (r *TaskRepository) Save(task *model.Task) error {
	return r.DB.Save(task).Error
}

func (r *TaskRepository) DeleteByID(id string) error {
	return r.DB.Delete(&model.Task{}, "id = ?", id).Error
}

func (r *TaskRepository) DeleteByCourse(course string) error {
	return r.DB.Where("course = ?", course).Delete(&model.Task{}).Error
}

// DeleteAll vacía la colección; solo lo usa el seed.
func (r *TaskRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Task{}).Error
}
