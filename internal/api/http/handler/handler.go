// Package handler implements the HTTP endpoints on top of the services.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// currentUser returns the caller put into the context by the authenticate middleware.
func currentUser(c echo.Context, contextManager model.ContextManager) (model.User, error) {
	user, ok := contextManager.GetUserFromContext(c.Request().Context())
	if !ok {
		return model.User{}, apierrors.NewErrMissingAuthorizationToken()
	}
	return user, nil
}

// bind decodes the request body. Decode failures are validation errors.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apierrors.NewErrValidation("malformed request body")
	}
	return nil
}

// requireFields fails with a validation error naming the first empty field.
// Fields come in name, value pairs.
func requireFields(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			return apierrors.NewErrValidation("%s is required", fields[i])
		}
	}
	return nil
}

// writeStatus answers an edit or delete request. A failure keeps its real
// status code and puts the reason next to status=false.
func writeStatus(c echo.Context, logger *logger.Logger, op string, err error) error {
	if err == nil {
		return c.JSON(http.StatusOK, statusResponse{Status: true})
	}

	code, details := describeError(err)
	logger.Warn("HTTP handler: operation failed",
		"operation", op,
		"status", code,
		"error", err.Error())

	return c.JSON(code, statusResponse{Status: false, Details: details})
}
