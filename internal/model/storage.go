package model

import (
	"context"
	"io"
)

// Storage keeps raw file bytes addressed by key.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	// Download returns ErrNotFound if the key is absent.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}
