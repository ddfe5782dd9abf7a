package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/taskflow/api/internal/domain/entities"
	"github.com/taskflow/api/internal/infrastructure/database"
	"github.com/taskflow/api/internal/ports"
)

const taskColumns = "id, title, description, status, priority, created_at, updated_at, is_deleted"

// TaskRepositoryImpl implements the TaskRepository interface on PostgreSQL.
type TaskRepositoryImpl struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (title, description, status, priority)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, is_deleted`

	err := r.db.DB.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Status, task.Priority,
	).Scan(&task.ID, &task.CreatedAt, &task.IsDeleted)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int) (*entities.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE id = $1 AND is_deleted = FALSE`, taskColumns)

	var task entities.Task
	err := r.db.DB.GetContext(ctx, &task, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id int, fn func(*entities.Task) error) (*entities.Task, error) {
	var task entities.Task

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		// Lock the live row first so the read, the merge in fn and the write
		// happen under the same lock. Two concurrent partial updates then
		// serialize fully and neither can revert the other's fields.
		query := fmt.Sprintf(`
			SELECT %s
			FROM tasks
			WHERE id = $1 AND is_deleted = FALSE
			FOR UPDATE`, taskColumns)

		if err := tx.GetContext(ctx, &task, query, id); err != nil {
			if err == sql.ErrNoRows {
				return entities.ErrTaskNotFound
			}
			return fmt.Errorf("lock task: %w", err)
		}

		if err := fn(&task); err != nil {
			return err
		}

		update := `
			UPDATE tasks
			SET title = $2, description = $3, status = $4, priority = $5,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = $1
			RETURNING updated_at`

		if err := tx.QueryRowContext(ctx, update,
			task.ID, task.Title, task.Description, task.Status, task.Priority,
		).Scan(&task.UpdatedAt); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) SoftDelete(ctx context.Context, id int) (*entities.Task, error) {
	var task entities.Task

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		query := fmt.Sprintf(`
			SELECT %s
			FROM tasks
			WHERE id = $1 AND is_deleted = FALSE
			FOR UPDATE`, taskColumns)

		err := tx.GetContext(ctx, &task, query, id)
		if err != nil {
			if err == sql.ErrNoRows {
				return entities.ErrTaskNotFound
			}
			return fmt.Errorf("get task for delete: %w", err)
		}

		err = tx.QueryRowContext(ctx,
			`UPDATE tasks
			SET is_deleted = TRUE, updated_at = CURRENT_TIMESTAMP
			WHERE id = $1
			RETURNING updated_at`,
			id,
		).Scan(&task.UpdatedAt)
		if err != nil {
			return fmt.Errorf("soft delete task: %w", err)
		}

		task.IsDeleted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) HardDelete(ctx context.Context, id int) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, int, error) {
	where, args := buildListFilter(filter)

	// Total is computed over the full filtered set, before pagination.
	countQuery := "SELECT COUNT(*) FROM tasks WHERE " + where

	var total int
	if err := r.db.DB.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE %s
		ORDER BY created_at DESC, id
		LIMIT $%d OFFSET $%d`, taskColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	tasks := []*entities.Task{}
	if err := r.db.DB.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, total, nil
}

// buildListFilter renders the conjunctive WHERE clause and its positional
// arguments for a list query. Deleted rows are always excluded.
func buildListFilter(filter ports.TaskFilter) (string, []interface{}) {
	clauses := []string{"is_deleted = FALSE"}
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("priority = $%d", len(args)))
	}

	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	return strings.Join(clauses, " AND "), args
}
