package repository

import (
	"time"

	"gestor_unad_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubtaskProgressRepository struct {
	DB *gorm.DB
}

func NewSubtaskProgressRepository(db *gorm.DB) *SubtaskProgressRepository {
	return &SubtaskProgressRepository{DB: db}
}

func (r *SubtaskProgressRepository) FindByTask(taskID string) (*model.SubtaskProgress, error) {
	var sp model.SubtaskProgress
	err := r.DB.First(&sp, "task_id = ?", taskID).Error
	return &sp, err
}

// Replace pisa doneItems completo para la tarea (upsert, no merge).
func (r *SubtaskProgressRepository) Replace(taskID string, doneItems []int) (*model.SubtaskProgress, error) {
	if doneItems == nil {
		doneItems = []int{}
	}
	items := datatypes.NewJSONSlice(doneItems)
	sp := &model.SubtaskProgress{
		TaskID:    taskID,
		DoneItems: items,
	}
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "task_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"done_items": items,
			"updated_at": time.Now(),
		}),
	}).Create(sp).Error
	if err != nil {
		return nil, err
	}
	return r.FindByTask(taskID)
}

func (r *SubtaskProgressRepository) DeleteByTask(taskID string) error {
	return r.DB.Where("task_id = ?", taskID).Delete(&model.SubtaskProgress{}).Error
}
