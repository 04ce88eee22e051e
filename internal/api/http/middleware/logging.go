package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/logger"
)

// Logging logs every HTTP request and its result.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle commits handler errors through echo's error handler first, so the
// logged status is the one the client sees.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()
		args := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"status", res.Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", res.Header().Get(echo.HeaderXRequestID),
		}

		if err != nil {
			l.logger.Error("HTTP request failed", append(args, "error", err.Error())...)
			return nil
		}

		l.logger.Info("HTTP request completed", args...)
		return nil
	}
}
