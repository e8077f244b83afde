package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"workflowpro-api/internal/application/command"
	"workflowpro-api/internal/application/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c echo.Context) error {
	skip, limit := paginationParams(c)

	tasks, err := h.taskService.List(c.Request().Context(), CurrentUser(c).ID, skip, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c echo.Context) error {
	var cmd command.CreateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	cmd.IdempotencyKey = c.Request().Header.Get("Idempotency-Key")

	result, err := h.taskService.Create(c.Request().Context(), CurrentUser(c).ID, &cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *TaskHandler) Get(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.taskService.Get(c.Request().Context(), CurrentUser(c).ID, taskID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *TaskHandler) Update(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var cmd command.UpdateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.taskService.Update(c.Request().Context(), CurrentUser(c).ID, taskID, &cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *TaskHandler) Delete(c echo.Context) error {
	taskID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), CurrentUser(c).ID, taskID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" parameter")
	}
	return uint(id), nil
}

func paginationParams(c echo.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.QueryParam("skip"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return skip, limit
}
