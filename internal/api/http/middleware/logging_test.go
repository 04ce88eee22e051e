package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/yokai-server/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		wantStatus int
		wantLog    string
	}{
		{
			name: "success",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
			wantLog:    "HTTP request completed",
		},
		{
			name: "error is committed before logging",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusTeapot, "short and stout")
			},
			wantStatus: http.StatusTeapot,
			wantLog:    "HTTP request failed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			l := NewLogging(logger.NewWithWriter(buf, 0, "json"))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/host", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

			err := l.Handle(tt.handler)(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"status":`)
			assert.Contains(t, buf.String(), "req-1")
		})
	}
}
