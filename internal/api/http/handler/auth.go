package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// IdentityService registers invited users.
type IdentityService interface {
	Register(ctx context.Context, inviteCode string, params model.ProvisionParams) (model.User, error)
}

// TokenService defines login, logout and token listing.
type TokenService interface {
	Login(ctx context.Context, username, password string) (model.APIToken, error)
	Logout(ctx context.Context, token string) error
	ListTokens(ctx context.Context, username string) ([]model.APIToken, error)
}

// Auth handles registration and sessions.
type Auth struct {
	identityService IdentityService
	tokenService    TokenService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	identityService IdentityService,
	tokenService TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		identityService: identityService,
		tokenService:    tokenService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type registerRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	Description    string `json:"description"`
	DisplayName    string `json:"display_name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	TertiaryColor  string `json:"tertiary_color"`
	InviteCode     string `json:"invite_code"`
}

// Register creates an account and consumes the invite code.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	h.logger.Debug("Auth handler: processing registration", "username", req.Username)

	user, err := h.identityService.Register(c.Request().Context(), req.InviteCode, model.ProvisionParams{
		Username:       req.Username,
		Password:       req.Password,
		DisplayName:    req.DisplayName,
		Description:    req.Description,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		TertiaryColor:  req.TertiaryColor,
	})
	if err != nil {
		h.logger.Info("Auth handler: registration rejected",
			"username", req.Username,
			"error", err.Error())
		return err
	}

	return c.JSON(http.StatusCreated, newUserResponse(user))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("username", req.Username, "password", req.Password); err != nil {
		return err
	}

	token, err := h.tokenService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{APIToken: token.Token})
}

// Logout revokes the token the request was authenticated with.
func (h *Auth) Logout(c echo.Context) error {
	token, ok := h.contextManager.GetTokenFromContext(c.Request().Context())
	if !ok {
		return apierrors.NewErrMissingAuthorizationToken()
	}

	err := h.tokenService.Logout(c.Request().Context(), token)
	return writeStatus(c, h.logger, "logout", err)
}

// Tokens lists the caller's sessions without the secrets.
func (h *Auth) Tokens(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}
	current, _ := h.contextManager.GetTokenFromContext(c.Request().Context())

	tokens, err := h.tokenService.ListTokens(c.Request().Context(), user.Username)
	if err != nil {
		return err
	}

	out := make([]tokenInfoResponse, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tokenInfoResponse{
			TokenID:   t.TokenID,
			CreatedAt: formatTime(t.CreatedAt),
			Current:   t.Token == current,
		})
	}

	return c.JSON(http.StatusOK, out)
}
