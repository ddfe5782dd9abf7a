package ports

import (
	"context"

	"github.com/taskflow/api/internal/domain/entities"
)

// TaskService defines the application-level task operations exposed to the
// HTTP adapter.
type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, id int) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id int) (*entities.Task, error)
	HardDeleteTask(ctx context.Context, id int) error
	ListTasks(ctx context.Context, filter TaskFilter) ([]*entities.Task, int, error)
}

// CreateTaskRequest carries the caller-supplied fields for a new task.
// Status and priority default when omitted.
type CreateTaskRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description *string                `json:"description" validate:"omitempty,max=1000"`
	Status      *entities.TaskStatus   `json:"status" validate:"omitempty,oneof=active completed pending"`
	Priority    *entities.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest is a partial update; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string                `json:"title" validate:"omitempty"`
	Description *string                `json:"description" validate:"omitempty,max=1000"`
	Status      *entities.TaskStatus   `json:"status" validate:"omitempty,oneof=active completed pending"`
	Priority    *entities.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
}
