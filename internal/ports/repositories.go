package ports

import (
	"context"

	"github.com/taskflow/api/internal/domain/entities"
)

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	// Create persists a new task and fills in its store-assigned fields
	// (ID, CreatedAt).
	Create(ctx context.Context, task *entities.Task) error

	// GetByID returns the live (non-deleted) task with the given id, or
	// entities.ErrTaskNotFound.
	GetByID(ctx context.Context, id int) (*entities.Task, error)

	// Update locks the live (non-deleted) row with the given id, applies fn
	// to it, persists the result and stamps UpdatedAt. The whole
	// read-modify-write runs under the row lock so concurrent updates of the
	// same id cannot overwrite each other's fields. An error from fn aborts
	// the update. Absent ids yield entities.ErrTaskNotFound.
	Update(ctx context.Context, id int, fn func(*entities.Task) error) (*entities.Task, error)

	// SoftDelete marks the task deleted and stamps UpdatedAt, returning the
	// deleted representation. Already-deleted or absent ids yield
	// entities.ErrTaskNotFound.
	SoftDelete(ctx context.Context, id int) (*entities.Task, error)

	// HardDelete permanently removes the row regardless of its soft-delete
	// state. Absent ids yield entities.ErrTaskNotFound.
	HardDelete(ctx context.Context, id int) error

	// List returns the filtered page and the total count of matching
	// non-deleted tasks before pagination.
	List(ctx context.Context, filter TaskFilter) ([]*entities.Task, int, error)
}

// TaskFilter narrows and paginates List results. All supplied filters must
// match; Search is a case-insensitive substring match over title or
// description.
type TaskFilter struct {
	Status   *entities.TaskStatus
	Priority *entities.TaskPriority
	Search   *string
	Offset   int
	Limit    int
}
