package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workflowpro-api/internal/application/services"
)

// ErrorBody is the uniform error envelope every endpoint returns.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// NewErrorHandler maps service errors onto HTTP responses. Service *Error
// values carry their own status; anything unrecognized becomes a 500 with
// the detail kept out of the response body.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := "Internal server error"

		var svcErr *services.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &svcErr):
			status = svcErr.Status
			detail = svcErr.Message
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				detail = msg
			}
		default:
			logger.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, ErrorBody{Detail: detail})
	}
}
