package services

import (
	"context"
	"fmt"

	"github.com/taskflow/api/internal/domain/entities"
	"github.com/taskflow/api/internal/infrastructure/logger"
	"github.com/taskflow/api/internal/ports"
)

// TaskService handles task-related operations
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask validates the request, applies defaults and persists a new task.
func (s *TaskService) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	title, err := entities.ValidateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if err := entities.ValidateDescription(*req.Description); err != nil {
			return nil, err
		}
	}

	status := entities.TaskStatusActive
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, entities.NewValidationError("status", "status must be one of active, completed, pending")
		}
		status = *req.Status
	}

	priority := entities.TaskPriorityMedium
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, entities.NewValidationError("priority", "priority must be one of low, medium, high")
		}
		priority = *req.Priority
	}

	task := &entities.Task{
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created successfully", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// GetTask retrieves a live task by ID.
func (s *TaskService) GetTask(ctx context.Context, id int) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask applies a partial update to an existing task. Fields absent
// from the request are left unchanged. The merge runs inside the
// repository's row lock so the read-modify-write is atomic.
func (s *TaskService) UpdateTask(ctx context.Context, id int, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.Update(ctx, id, func(task *entities.Task) error {
		if req.Title != nil {
			title, err := entities.ValidateTitle(*req.Title)
			if err != nil {
				return err
			}
			task.Title = title
		}
		if req.Description != nil {
			if err := entities.ValidateDescription(*req.Description); err != nil {
				return err
			}
			task.Description = req.Description
		}
		if req.Status != nil {
			if !req.Status.IsValid() {
				return entities.NewValidationError("status", "status must be one of active, completed, pending")
			}
			task.Status = *req.Status
		}
		if req.Priority != nil {
			if !req.Priority.IsValid() {
				return entities.NewValidationError("priority", "priority must be one of low, medium, high")
			}
			task.Priority = *req.Priority
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Task updated successfully", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// DeleteTask soft-deletes a task and returns its final representation.
func (s *TaskService) DeleteTask(ctx context.Context, id int) (*entities.Task, error) {
	task, err := s.taskRepo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Task deleted successfully", "task_id", id)

	return task, nil
}

// HardDeleteTask permanently removes a task. Not exposed over HTTP; used by
// administrative tooling.
func (s *TaskService) HardDeleteTask(ctx context.Context, id int) error {
	if err := s.taskRepo.HardDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Task permanently removed", "task_id", id)

	return nil
}

// ListTasks retrieves tasks with filtering and pagination. The returned
// count covers the full filtered set before pagination.
func (s *TaskService) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, int, error) {
	tasks, total, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}
