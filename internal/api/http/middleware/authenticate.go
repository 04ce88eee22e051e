package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// TokenFormField is the body field older clients use to send the bearer token.
const TokenFormField = "api_token"

// MetadataFormField is the multipart field holding JSON upload metadata.
const MetadataFormField = "json"

// TokenResolver resolves the owner of a bearer token.
type TokenResolver interface {
	ResolveUser(ctx context.Context, token string) (model.User, error)
}

// Authenticate resolves the bearer token and puts the caller into the request context.
type Authenticate struct {
	tokenResolver  TokenResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenResolver TokenResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenResolver: tokenResolver, contextManager: contextManager, logger: logger}
}

// Handle looks for the token in the Authorization header, then in the JSON
// body or form, then in the query string.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return apierrors.NewErrMissingAuthorizationToken()
		}

		ctx := c.Request().Context()
		user, err := m.tokenResolver.ResolveUser(ctx, token)
		if err != nil {
			if apierrors.KindOf(err) == apierrors.KindStore {
				return err
			}
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", c.Path(),
				"error", err.Error())
			return apierrors.NewErrInvalidAuthorizationToken()
		}

		ctx = m.contextManager.SetUserToContext(ctx, user)
		ctx = m.contextManager.SetTokenToContext(ctx, token)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *Authenticate) extractToken(c echo.Context) string {
	req := c.Request()

	if header := req.Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	contentType := req.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(contentType, echo.MIMEApplicationJSON):
		return m.tokenFromBody(c)
	case strings.HasPrefix(contentType, echo.MIMEApplicationForm):
		return c.FormValue(TokenFormField)
	case strings.HasPrefix(contentType, echo.MIMEMultipartForm):
		if token := c.FormValue(TokenFormField); token != "" {
			return token
		}
		return tokenFromJSON([]byte(c.FormValue(MetadataFormField)))
	}

	// Browsers cannot set headers on websocket requests.
	return c.QueryParam(TokenFormField)
}

// tokenFromBody peeks into the body and puts it back for the handler.
func (m *Authenticate) tokenFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	return tokenFromJSON(body)
}

func tokenFromJSON(data []byte) string {
	var payload struct {
		APIToken string `json:"api_token"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.APIToken
}
