package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/taskflow/api/internal/domain/entities"
	"github.com/taskflow/api/internal/infrastructure/config"
	"github.com/taskflow/api/internal/infrastructure/logger"
	"github.com/taskflow/api/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	pagination  config.PaginationConfig
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, pagination config.PaginationConfig, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		pagination:  pagination,
		logger:      logger,
	}
}

// PaginatedResponse is the list envelope returned by ListTasks.
type PaginatedResponse struct {
	Items    []*entities.Task `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	PageSize int              `json:"page_size"`
}

// ValidationErrorResponse carries per-field validation detail.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// ListTasks handles GET /tasks with pagination and filtering.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "page must be a positive integer")
	}

	pageSize, err := queryInt(c, "page_size", h.pagination.DefaultPageSize)
	if err != nil || pageSize < 1 || pageSize > h.pagination.MaxPageSize {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("page_size must be between 1 and %d", h.pagination.MaxPageSize))
	}

	filter := ports.TaskFilter{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entities.TaskStatus(raw)
		if !status.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be one of active, completed, pending")
		}
		filter.Status = &status
	}

	if raw := c.QueryParam("priority"); raw != "" {
		priority := entities.TaskPriority(raw)
		if !priority.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high")
		}
		filter.Priority = &priority
	}

	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}

	tasks, total, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve tasks")
	}

	pages := 0
	if total > 0 {
		pages = (total + pageSize - 1) / pageSize
	}

	return c.JSON(http.StatusOK, PaginatedResponse{
		Items:    tasks,
		Total:    total,
		Page:     page,
		Pages:    pages,
		PageSize: pageSize,
	})
}

// GetTask handles GET /tasks/:id.
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return h.mapTaskError(c, err, id)
	}

	return c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /tasks. A blind client retry after a 5xx may
// create a duplicate record; ids are store-assigned, not idempotency keys.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return requestValidationError(err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return h.mapTaskError(c, err, 0)
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id with a partial body.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return requestValidationError(err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return h.mapTaskError(c, err, id)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id. The soft-deleted representation is
// returned with 200 so the caller can report what was removed.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return h.mapTaskError(c, err, id)
	}

	return c.JSON(http.StatusOK, task)
}

// mapTaskError translates service errors into wire responses.
func (h *TaskHandler) mapTaskError(c echo.Context, err error, id int) error {
	if errors.Is(err, entities.ErrTaskNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("task with id %d not found", id))
	}

	if ve, ok := entities.AsValidationError(err); ok {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Message: "validation failed",
			Fields:  ve.Fields,
		})
	}

	h.logger.Error("Task operation failed", "error", err, "path", c.Request().URL.Path)
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}

// requestValidationError shapes binder-level validation failures like
// service-side ones so both paths return the same {message, fields} envelope.
func requestValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[strings.ToLower(fieldErr.Field())] = fmt.Sprintf("failed on the %s rule", fieldErr.Tag())
	}

	return echo.NewHTTPError(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: "validation failed",
		Fields:  fields,
	})
}

func taskID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
