package context

import (
	"context"

	"github.com/dtroode/yokai-server/internal/model"
)

type contextKey int

const (
	userKey contextKey = iota
	tokenKey
)

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authenticated user and the bearer token in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx that carries user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user set by SetUserToContext.
//
// The boolean is false when the request was not authenticated.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	if !ok || user.Username == "" {
		return model.User{}, false
	}
	return user, true
}

func (m *Manager) SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func (m *Manager) GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
