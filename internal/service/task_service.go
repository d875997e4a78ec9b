package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskmeter/taskmeter/internal/domain"
	"github.com/taskmeter/taskmeter/internal/repository"
)

// TaskService coordinates task CRUD with validation and ownership checks.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTask validates and persists a new task for the given owner.
func (s *TaskService) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	slog.Info("task created",
		"task_id", created.ID,
		"owner_id", created.OwnerID,
		"priority", created.Priority,
	)

	return created, nil
}

// GetTask retrieves a task, enforcing ownership.
func (s *TaskService) GetTask(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := CanAccess(task, userID); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies field changes to an owned task. The repository touches
// updated_at on every change, so completing a task records the completion day.
func (s *TaskService) UpdateTask(
	ctx context.Context,
	taskID string,
	userID string,
	apply func(*domain.Task),
) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := CanAccess(task, userID); err != nil {
		return nil, err
	}

	oldStatus := task.Status
	apply(task)

	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	if oldStatus != updated.Status {
		slog.Info("task status changed",
			"task_id", updated.ID,
			"old_status", oldStatus,
			"new_status", updated.Status,
		)
	}

	return updated, nil
}

// DeleteTask removes an owned task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if err := CanAccess(task, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	slog.Info("task deleted", "task_id", taskID, "owner_id", userID)
	return nil
}

// ListTasks returns a filtered page of the user's tasks and the total count.
func (s *TaskService) ListTasks(ctx context.Context, filters repository.TaskListFilters) ([]domain.Task, int, error) {
	return s.taskRepo.List(ctx, filters)
}
