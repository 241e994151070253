package service

import (
	"errors"

	"gestor_unad_backend/internal/model"
	"gestor_unad_backend/internal/repository"
	"gestor_unad_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskService struct {
	tasks    *repository.TaskRepository
	progress *repository.SubtaskProgressRepository
}

func NewTaskService(tasks *repository.TaskRepository, progress *repository.SubtaskProgressRepository) *TaskService {
	return &TaskService{tasks: tasks, progress: progress}
}

// TaskPatch son los únicos campos modificables por PATCH; todo lo
// demás (id, timestamps) es inmutable por esa vía. Puntero nil
// significa "sin cambio", así un done:false explícito sí aplica.
type TaskPatch struct {
	Done      *bool             `json:"done"`
	Notes     *string           `json:"notes"`
	AIHistory *[]model.ChatTurn `json:"aiHistory"`
	Name      *string           `json:"name"`
	Course    *string           `json:"course"`
	Tipo      *model.Tipo       `json:"tipo"`
	Pts       *float64          `json:"pts"`
	Due       *string           `json:"due"`
	Desc      *string           `json:"desc"`
	Subtasks  *[]string         `json:"subtasks"`
	Recursos  *[]string         `json:"recursos"`
	Momento   *model.Momento    `json:"momento"`
	CampusURL *string           `json:"campusUrl"`
}

func validateTask(t *model.Task) error {
	if t.Course == "" {
		return util.ErrCourseRequerido
	}
	if t.Name == "" {
		return util.ErrNameRequerido
	}
	if !t.Momento.Valid() {
		return util.ErrMomentoInvalido
	}
	if !t.Tipo.Valid() {
		return util.ErrTipoInvalido
	}
	for _, turn := range t.AIHistory {
		if turn.Role != "user" && turn.Role != "assistant" {
			return util.ErrRoleInvalido
		}
	}
	return nil
}

// normalizeTask aplica los defaults de esquema antes de persistir.
func normalizeTask(t *model.Task) {
	if t.Tipo == "" {
		t.Tipo = model.TipoIndividual
	}
	if t.Recursos == nil {
		t.Recursos = datatypes.NewJSONSlice([]string{})
	}
	if t.Subtasks == nil {
		t.Subtasks = datatypes.NewJSONSlice([]string{})
	}
	if t.AIHistory == nil {
		t.AIHistory = datatypes.NewJSONSlice([]model.ChatTurn{})
	}
}

func (s *TaskService) List(course string) ([]*model.Task, error) {
	return s.tasks.FindAll(course)
}

func (s *TaskService) Create(task *model.Task) (*model.Task, error) {
	normalizeTask(task)
	if err := validateTask(task); err != nil {
		return nil, err
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Replace sustituye todos los campos de dominio conservando identidad
// y fecha de creación.
func (s *TaskService) Replace(id string, incoming *model.Task) (*model.Task, error) {
	existing, err := s.tasks.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTaskNotFound
		}
		return nil, err
	}
	incoming.ID = existing.ID
	incoming.CreatedAt = existing.CreatedAt
	normalizeTask(incoming)
	if err := validateTask(incoming); err != nil {
		return nil, err
	}
	if err := s.tasks.Save(incoming); err != nil {
		return nil, err
	}
	return incoming, nil
}

func (s *TaskService) Patch(id string, patch *TaskPatch) (*model.Task, error) {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Done != nil {
		task.Done = *patch.Done
	}
	if patch.Notes != nil {
		task.Notes = *patch.Notes
	}
	if patch.AIHistory != nil {
		task.AIHistory = datatypes.NewJSONSlice(*patch.AIHistory)
	}
	if patch.Name != nil {
		task.Name = *patch.Name
	}
	if patch.Course != nil {
		task.Course = *patch.Course
	}
	if patch.Tipo != nil {
		task.Tipo = *patch.Tipo
	}
	if patch.Pts != nil {
		task.Pts = *patch.Pts
	}
	if patch.Due != nil {
		task.Due = *patch.Due
	}
	if patch.Desc != nil {
		task.Desc = *patch.Desc
	}
	if patch.Subtasks != nil {
		task.Subtasks = datatypes.NewJSONSlice(*patch.Subtasks)
	}
	if patch.Recursos != nil {
		task.Recursos = datatypes.NewJSONSlice(*patch.Recursos)
	}
	if patch.Momento != nil {
		task.Momento = *patch.Momento
	}
	if patch.CampusURL != nil {
		task.CampusURL = *patch.CampusURL
	}

	if err := validateTask(task); err != nil {
		return nil, err
	}
	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete borra la tarea y arrastra su registro de progreso.
func (s *TaskService) Delete(id string) error {
	if _, err := s.tasks.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTaskNotFound
		}
		return err
	}
	if err := s.tasks.DeleteByID(id); err != nil {
		return err
	}
	return s.progress.DeleteByTask(id)
}

// GetProgress devuelve los índices marcados; sin registro no hay
// error, solo conjunto vacío ("sin progreso" y "todo desmarcado" son
// indistinguibles).
func (s *TaskService) GetProgress(taskID string) ([]int, error) {
	sp, err := s.progress.FindByTask(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []int{}, nil
		}
		return nil, err
	}
	if sp.DoneItems == nil {
		return []int{}, nil
	}
	return sp.DoneItems, nil
}

func (s *TaskService) PutProgress(taskID string, doneItems []int) (*model.SubtaskProgress, error) {
	return s.progress.Replace(taskID, doneItems)
}
