package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// Admin handles admin-only account endpoints. The services enforce the admin check.
type Admin struct {
	accountService AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(accountService AccountService, contextManager model.ContextManager, logger *logger.Logger) *Admin {
	return &Admin{
		accountService: accountService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type inviteRequest struct {
	Code string `json:"code"`
}

type kickRequest struct {
	Username string `json:"username"`
}

func (h *Admin) CreateInvite(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	invite, err := h.accountService.CreateInvite(c.Request().Context(), user, req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, inviteResponse{Code: invite.Code})
}

func (h *Admin) Kick(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req kickRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("username", req.Username); err != nil {
		return err
	}

	err = h.accountService.Kick(c.Request().Context(), user, req.Username)
	return writeStatus(c, h.logger, "kick user", err)
}
