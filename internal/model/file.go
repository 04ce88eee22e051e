package model

import (
	"context"
	"time"
)

// UserFile is the metadata row of an uploaded blob. FilePath is the blob's key in Storage.
type UserFile struct {
	FileID    string
	Name      string
	FilePath  string
	Owner     string
	CreatedAt time.Time
}

type FileStore interface {
	Create(ctx context.Context, file UserFile) (UserFile, error)
	GetByID(ctx context.Context, fileID string) (UserFile, error)
	ListByOwner(ctx context.Context, owner string) ([]UserFile, error)
	Delete(ctx context.Context, fileID string) error
}
