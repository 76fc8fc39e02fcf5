package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"database reachable", nil, http.StatusOK},
		{"database down", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHealthCheckHandler(stubHealthChecker{err: tc.err})
			require.NoError(t, handler.HealthCheck(c))
			assert.Equal(t, tc.status, rec.Code)

			if tc.err != nil {
				var response ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, "SYSTEM_003", response.Error.Code)
				assert.NotContains(t, rec.Body.String(), "5432")
			}
		})
	}
}
