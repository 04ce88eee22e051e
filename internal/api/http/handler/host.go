package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// HostService defines site branding operations.
type HostService interface {
	Get(ctx context.Context) (model.HostInfo, error)
	Update(ctx context.Context, caller model.User, params model.UpdateHostParams) error
}

// Host handles site branding endpoints.
type Host struct {
	hostService    HostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewHost creates a new Host handler.
func NewHost(hostService HostService, contextManager model.ContextManager, logger *logger.Logger) *Host {
	return &Host{
		hostService:    hostService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Host) Get(c echo.Context) error {
	info, err := h.hostService.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newHostResponse(info))
}

func (h *Host) EditPrimaryColor(c echo.Context) error {
	return h.edit(c, "edit host primary color", func(p *model.UpdateHostParams, v string) { p.PrimaryColor = &v })
}

func (h *Host) EditSecondaryColor(c echo.Context) error {
	return h.edit(c, "edit host secondary color", func(p *model.UpdateHostParams, v string) { p.SecondaryColor = &v })
}

func (h *Host) EditTertiaryColor(c echo.Context) error {
	return h.edit(c, "edit host tertiary color", func(p *model.UpdateHostParams, v string) { p.TertiaryColor = &v })
}

func (h *Host) edit(c echo.Context, op string, set func(*model.UpdateHostParams, string)) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req editRequest
	if err := bind(c, &req); err != nil {
		return writeStatus(c, h.logger, op, err)
	}

	var params model.UpdateHostParams
	set(&params, req.NewValue)

	err = h.hostService.Update(c.Request().Context(), user, params)
	return writeStatus(c, h.logger, op, err)
}
