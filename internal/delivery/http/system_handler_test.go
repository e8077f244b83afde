package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewSystemHandler().Root(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "WorkFlowPro API", body["name"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "/docs", body["docs"])
}

func TestPing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewSystemHandler().Ping(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pong", body["message"])
	assert.Equal(t, "healthy", body["status"])
}

func TestDocsServesSwaggerUI(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewDocsHandler().Docs(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
	assert.Contains(t, rec.Body.String(), "/openapi.json")
}

func TestOpenAPIDocument(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewDocsHandler().OpenAPI(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	info, ok := doc["info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "WorkFlowPro API", info["title"])
}
