package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSkipRequestLog(t *testing.T) {
	e := echo.New()
	tests := map[string]bool{
		"/todo-tracker/health":            true,
		"/swagger/index.html":             true,
		"/todo-tracker/todos/1":           false,
		"/todo-tracker/users/health-team": false,
	}

	for path, skipped := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		assert.Equal(t, skipped, skipRequestLog(c), path)
	}
}

func TestSetupRequestLoggerSetsRequestID(t *testing.T) {
	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/todos", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
