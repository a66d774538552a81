package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-service/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. All routes sit
// behind the authentication guard; the quota check happens in the service.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create adds a task for the caller and returns the refreshed list.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskListResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), principal, ports.CreateTaskInput{Title: req.Title})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTaskListResponse(result))
}

// List returns all of the caller's tasks.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  taskListResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskListResponse(result))
}

// Update toggles a task's done flag and returns the refreshed list.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      modifyTaskRequest  true  "Task modification"
// @Success      200   {object}  taskListResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tasks [put]
func (h *TaskHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req modifyTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Update(c.Request().Context(), principal.UserID, req.ID, req.Done)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskListResponse(result))
}

// Delete removes a task and returns the refreshed list.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  taskListResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	result, err := h.service.Delete(c.Request().Context(), principal.UserID, taskID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskListResponse(result))
}
