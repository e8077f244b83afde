package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDParamRejectsNonNumeric(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := NewTaskHandler(nil).Get(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "Invalid id parameter", httpErr.Message)
}

func TestPaginationParams(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/tasks?skip=5&limit=20", nil)
	skip, limit := paginationParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, 5, skip)
	assert.Equal(t, 20, limit)

	// Missing or junk values come through as zero; the services apply
	// their own defaults.
	req = httptest.NewRequest(http.MethodGet, "/tasks?skip=x", nil)
	skip, limit = paginationParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, 0, skip)
	assert.Equal(t, 0, limit)
}
