package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Common errors
var (
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError reports invalid input with per-field detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

type TaskStatus string

const (
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusPending   TaskStatus = "pending"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Title and description bounds enforced at create and update.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Task represents a task record. Soft-deleted tasks stay in storage with
// IsDeleted set and are invisible to get/list.
type Task struct {
	ID          int          `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description" db:"description"`
	Status      TaskStatus   `json:"status" db:"status"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at" db:"updated_at"`
	IsDeleted   bool         `json:"is_deleted" db:"is_deleted"`
}

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusActive, TaskStatusCompleted, TaskStatusPending:
		return true
	default:
		return false
	}
}

func (tp TaskPriority) IsValid() bool {
	switch tp {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// ValidateTitle trims the title and checks the length bounds. Bounds count
// characters, not bytes, so multibyte titles are not rejected early. Returns
// the trimmed value that should be persisted.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", NewValidationError("title", "title must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return "", NewValidationError("title", fmt.Sprintf("title must be at most %d characters", MaxTitleLength))
	}
	return trimmed, nil
}

// ValidateDescription checks the description length bound in characters.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return NewValidationError("description", fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength))
	}
	return nil
}
