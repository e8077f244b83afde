package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"workflowpro-api/internal/application/common"
	"workflowpro-api/internal/application/services"
	"workflowpro-api/internal/infrastructure"
)

const currentUserKey = "current_user"

// Global throughput guard for the HTTP front door.
const (
	globalRateLimit = 5000 // requests per second
	globalRateBurst = 1000
)

// RequireAuth verifies the bearer token and resolves it to the user it
// belongs to, storing the result on the request context.
func RequireAuth(tokenService *infrastructure.TokenService, userService *services.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			email, err := tokenService.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}

			profile, err := userService.GetProfile(c.Request().Context(), email)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}

			c.Set(currentUserKey, profile.Result)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user placed on the context by
// RequireAuth.
func CurrentUser(c echo.Context) common.UserResult {
	user, _ := c.Get(currentUserKey).(common.UserResult)
	return user
}

// GlobalRateLimit sheds load before any handler runs.
func GlobalRateLimit() echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(globalRateLimit), globalRateBurst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
