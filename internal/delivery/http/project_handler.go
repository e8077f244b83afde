package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workflowpro-api/internal/application/command"
	"workflowpro-api/internal/application/services"
	"workflowpro-api/internal/domain/entities"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c echo.Context) error {
	skip, limit := paginationParams(c)

	projects, err := h.projectService.List(c.Request().Context(), CurrentUser(c).ID, skip, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var cmd command.CreateProjectCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	cmd.IdempotencyKey = c.Request().Header.Get("Idempotency-Key")

	result, err := h.projectService.Create(c.Request().Context(), CurrentUser(c).ID, &cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}

// Get returns the project detail view with team members and task count.
func (h *ProjectHandler) Get(c echo.Context) error {
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.projectService.GetWithTeam(c.Request().Context(), CurrentUser(c).ID, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var cmd command.UpdateProjectCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.projectService.Update(c.Request().Context(), CurrentUser(c).ID, projectID, &cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), CurrentUser(c).ID, projectID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (h *ProjectHandler) AddTeamMember(c echo.Context) error {
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var body struct {
		UserID uint   `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd := command.AddTeamMemberCommand{
		ProjectID: projectID,
		UserID:    body.UserID,
		Role:      entities.TeamRole(body.Role),
	}

	result, err := h.projectService.AddTeamMember(c.Request().Context(), CurrentUser(c).ID, &cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *ProjectHandler) RemoveTeamMember(c echo.Context) error {
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := idParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.projectService.RemoveTeamMember(c.Request().Context(), CurrentUser(c).ID, projectID, userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Team member removed successfully"})
}

func (h *ProjectHandler) ListTeam(c echo.Context) error {
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	members, err := h.projectService.ListTeam(c.Request().Context(), CurrentUser(c).ID, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, members)
}
