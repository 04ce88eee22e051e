package model

import (
	"context"
	"time"
)

// APIToken is an opaque bearer secret issued on login. Tokens do not expire;
// logout and account deletion are the only ways to revoke one.
type APIToken struct {
	TokenID   string
	Token     string
	Owner     string
	CreatedAt time.Time
}

type TokenStore interface {
	Create(ctx context.Context, token APIToken) (APIToken, error)
	GetByToken(ctx context.Context, token string) (APIToken, error)
	ListByOwner(ctx context.Context, owner string) ([]APIToken, error)
	DeleteByToken(ctx context.Context, token string) error
}
