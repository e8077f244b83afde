package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workflowpro-api/internal/application/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) SystemOverview(c echo.Context) error {
	overview, err := h.reportService.SystemOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

func (h *ReportHandler) UserStats(c echo.Context) error {
	stats, err := h.reportService.UserStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) ProjectStats(c echo.Context) error {
	stats, err := h.reportService.ProjectStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) PriorityDistribution(c echo.Context) error {
	dist, err := h.reportService.PriorityDistribution(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dist)
}

func (h *ReportHandler) StatusDistribution(c echo.Context) error {
	dist, err := h.reportService.StatusDistribution(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dist)
}

// Comprehensive bundles every report section into one payload. The result
// is cached for a few minutes, so consecutive dashboard loads stay cheap.
func (h *ReportHandler) Comprehensive(c echo.Context) error {
	report, err := h.reportService.Comprehensive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
