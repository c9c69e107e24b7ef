package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"student-assist/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// ListByUser returns the user's tasks in the list-view order: open tasks
// before done ones, earliest due date first with undated tasks last, most
// recently updated first as the tie-break.
func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("done ASC, due_at IS NULL ASC, due_at ASC, updated_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// SetDone toggles completion; UpdatedAt is refreshed by the save.
func (r *TaskRepository) SetDone(ctx context.Context, task *model.Task, done bool) error {
	task.Done = done
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	return nil
}

// Delete removes a task for the given user. Tasks have no dependent
// entities, so no cascade is involved.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
