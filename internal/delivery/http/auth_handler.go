package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workflowpro-api/internal/application/command"
	"workflowpro-api/internal/application/services"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	cmd.IdempotencyKey = c.Request().Header.Get("Idempotency-Key")

	result, err := h.userService.Register(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.userService.Login(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, CurrentUser(c))
}

// Search backs the team-invitation user picker.
func (h *AuthHandler) Search(c echo.Context) error {
	results, err := h.userService.Search(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, results)
}
