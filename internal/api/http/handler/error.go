package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
)

const internalErrorMessage = "internal server error"

type errorResponse struct {
	Details string `json:"details"`
}

// ErrorHandler writes every error as {"details": ...} with a status code that
// matches its kind.
func ErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, details := describeError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("HTTP handler: internal error",
				"path", c.Path(),
				"error", err.Error())
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorResponse{Details: details})
		}
		if writeErr != nil {
			logger.Error("HTTP handler: failed to write error response", "error", writeErr.Error())
		}
	}
}

// describeError returns the status code and the client facing message of err.
func describeError(err error) (int, string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind.HTTPStatus(), apiErr.Message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, internalErrorMessage
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	return http.StatusInternalServerError, internalErrorMessage
}
