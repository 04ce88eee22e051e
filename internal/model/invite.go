package model

import (
	"context"
	"time"
)

// InviteCode gates registration. Each code can be used once.
type InviteCode struct {
	CodeID    string
	Code      string
	CreatedAt time.Time
}

type InviteStore interface {
	// Create returns ErrConflict if the same code is already outstanding.
	Create(ctx context.Context, invite InviteCode) (InviteCode, error)
}
