package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "WorkFlowPro API"
	serviceVersion = "1.0.0"
)

// SystemHandler serves the unauthenticated endpoints the deployment
// platform probes: the API root and the health check. Neither touches the
// database, so they answer even while the database is down.
type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":    serviceName,
		"version": serviceVersion,
		"status":  "running",
		"docs":    "/docs",
	})
}

func (h *SystemHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "pong",
		"status":  "healthy",
	})
}
