package model

import "context"

// HostInfo is the singleton branding row of the deployment.
type HostInfo struct {
	Hostname       string
	PrimaryColor   string
	SecondaryColor string
	TertiaryColor  string
}

type UpdateHostParams struct {
	PrimaryColor   *string
	SecondaryColor *string
	TertiaryColor  *string
}

type HostStore interface {
	// Get returns ErrNotFound before bootstrap and ErrInconsistentState if
	// more than one row exists.
	Get(ctx context.Context) (HostInfo, error)
	Create(ctx context.Context, info HostInfo) (HostInfo, error)
	Update(ctx context.Context, params UpdateHostParams) error
}
