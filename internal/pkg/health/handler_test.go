package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthy(context.Context) error { return nil }

func TestPingHandler(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "loadboard", "1.2.3", nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "loadboard", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestLivenessEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "loadboard", "dev", nil)

	for _, path := range []string{"/health", "/healthz"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String())
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name     string
		checkers map[string]Checker
		status   int
		report   string
	}{
		{
			name:     "all healthy",
			checkers: map[string]Checker{"postgres": CheckerFunc(healthy), "redis": CheckerFunc(healthy)},
			status:   http.StatusOK,
			report:   "ok",
		},
		{
			name: "redis down",
			checkers: map[string]Checker{
				"postgres": CheckerFunc(healthy),
				"redis":    CheckerFunc(func(context.Context) error { return errors.New("connection refused") }),
			},
			status: http.StatusServiceUnavailable,
			report: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterHealthEndpoints(e, "loadboard", "dev", tt.checkers)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.status, rec.Code)
			var report ReadinessReport
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
			assert.Equal(t, tt.report, report.Status)
			require.Len(t, report.Dependencies, 2)
			assert.Equal(t, "postgres", report.Dependencies[0].Name)
		})
	}
}
