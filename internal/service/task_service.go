package service

import (
	"context"
	"fmt"
	"time"

	"student-assist/internal/config"
	"student-assist/internal/model"
	"student-assist/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Description       string
	DueAt             *time.Time
	RemindBeforeHours int
}

// TaskService wraps task-related business logic. It is the validation
// boundary for reminder input: lead hours outside [0, MaxLeadHours] never
// reach storage or the time policy.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, user *model.User, input TaskInput) (*model.Task, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if input.RemindBeforeHours < 0 || input.RemindBeforeHours > config.MaxLeadHours {
		return nil, fmt.Errorf("remind before hours must be between 0 and %d", config.MaxLeadHours)
	}

	task := model.Task{
		UserID:            user.ID,
		Description:       input.Description,
		DueAt:             input.DueAt,
		RemindBeforeHours: input.RemindBeforeHours,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// List returns the user's tasks in the list-view order.
func (s *TaskService) List(ctx context.Context, user *model.User) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, user.ID)
}

// ToggleTask flips or sets completion for a task owned by the user.
func (s *TaskService) ToggleTask(ctx context.Context, user *model.User, taskID uint, done bool) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.SetDone(ctx, task, done); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, user *model.User, taskID uint) error {
	return s.taskRepo.Delete(ctx, user.ID, taskID)
}
