package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"workflowpro-api/internal/application/services"
	"workflowpro-api/internal/config"
	"workflowpro-api/internal/infrastructure"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	System  *SystemHandler
	Docs    *DocsHandler
	Auth    *AuthHandler
	Task    *TaskHandler
	Project *ProjectHandler
	Report  *ReportHandler
}

// NewRouter builds the echo instance with the full middleware chain and
// route table. Auth-protected groups sit behind RequireAuth; the root,
// health check and docs stay open so platform probes always get an answer.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	tokenService *infrastructure.TokenService,
	userService *services.UserService,
	h Handlers,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, "Idempotency-Key"},
	}))
	e.Use(requestLogger(logger))
	e.Use(GlobalRateLimit())

	e.GET("/", h.System.Root)
	e.GET("/ping", h.System.Ping)
	e.GET("/docs", h.Docs.Docs)
	e.GET("/openapi.json", h.Docs.OpenAPI)

	e.POST("/register", h.Auth.Register)
	e.POST("/login", h.Auth.Login)

	requireAuth := RequireAuth(tokenService, userService)

	e.GET("/me", h.Auth.Me, requireAuth)
	e.GET("/users/search", h.Auth.Search, requireAuth)

	tasks := e.Group("/tasks", requireAuth)
	tasks.GET("", h.Task.List)
	tasks.POST("", h.Task.Create)
	tasks.GET("/:id", h.Task.Get)
	tasks.PUT("/:id", h.Task.Update)
	tasks.DELETE("/:id", h.Task.Delete)

	projects := e.Group("/projects", requireAuth)
	projects.GET("", h.Project.List)
	projects.POST("", h.Project.Create)
	projects.GET("/:id", h.Project.Get)
	projects.PUT("/:id", h.Project.Update)
	projects.DELETE("/:id", h.Project.Delete)
	projects.GET("/:id/team", h.Project.ListTeam)
	projects.POST("/:id/team", h.Project.AddTeamMember)
	projects.DELETE("/:id/team/:user_id", h.Project.RemoveTeamMember)

	e.GET("/reports", h.Report.Comprehensive, requireAuth)
	reports := e.Group("/reports", requireAuth)
	reports.GET("/system-overview", h.Report.SystemOverview)
	reports.GET("/user-stats", h.Report.UserStats)
	reports.GET("/project-stats", h.Report.ProjectStats)
	reports.GET("/priority-distribution", h.Report.PriorityDistribution)
	reports.GET("/status-distribution", h.Report.StatusDistribution)

	return e
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
