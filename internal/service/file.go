package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// File keeps file rows and their blobs together. The two writes are not
// atomic, so a failed row insert removes the blob it just uploaded.
type File struct {
	fileStore model.FileStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewFile(fileStore model.FileStore, storage model.Storage, logger *logger.Logger) *File {
	return &File{
		fileStore: fileStore,
		storage:   storage,
		logger:    logger,
	}
}

func (s *File) Upload(ctx context.Context, owner, name string, reader io.Reader) (model.UserFile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.UserFile{}, apierrors.NewErrValidation("file name is required")
	}

	now := time.Now()
	fileID := newID(now, name, owner)
	key := fileKey(owner, fileID)

	if err := s.storage.Upload(ctx, key, reader); err != nil {
		return model.UserFile{}, storeError("upload file", err)
	}

	file, err := s.fileStore.Create(ctx, model.UserFile{
		FileID:    fileID,
		Name:      name,
		FilePath:  key,
		Owner:     owner,
		CreatedAt: now,
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("File service: failed to remove orphaned blob",
				"key", key,
				"error", delErr.Error())
		}
		return model.UserFile{}, storeError("create file", err)
	}

	s.logger.Info("File service: file uploaded",
		"file_id", file.FileID,
		"owner", owner)

	return file, nil
}

// Get returns the file row if owner owns it.
func (s *File) Get(ctx context.Context, owner, fileID string) (model.UserFile, error) {
	file, err := s.fileStore.GetByID(ctx, fileID)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserFile{}, apierrors.NewErrFileNotFound(fileID)
	}
	if err != nil {
		return model.UserFile{}, storeError("get file", err)
	}

	if file.Owner != owner {
		return model.UserFile{}, apierrors.NewErrNotFileOwner(fileID)
	}

	return file, nil
}

// Download opens the blob of an owned file. The caller closes the reader.
func (s *File) Download(ctx context.Context, owner, fileID string) (model.UserFile, io.ReadCloser, error) {
	file, err := s.Get(ctx, owner, fileID)
	if err != nil {
		return model.UserFile{}, nil, err
	}

	reader, err := s.storage.Download(ctx, file.FilePath)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Warn("File service: blob missing for file row",
			"file_id", fileID,
			"key", file.FilePath)
		return model.UserFile{}, nil, apierrors.NewErrFileNotFound(fileID)
	}
	if err != nil {
		return model.UserFile{}, nil, storeError("download file", err)
	}

	return file, reader, nil
}

// Delete removes the row first. A blob that cannot be removed is only logged.
func (s *File) Delete(ctx context.Context, owner, fileID string) error {
	file, err := s.Get(ctx, owner, fileID)
	if err != nil {
		return err
	}

	err = s.fileStore.Delete(ctx, fileID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrFileNotFound(fileID)
	}
	if err != nil {
		return storeError("delete file", err)
	}

	s.removeBlob(ctx, file)

	return nil
}

func (s *File) List(ctx context.Context, owner string) ([]model.UserFile, error) {
	files, err := s.fileStore.ListByOwner(ctx, owner)
	if err != nil {
		return nil, storeError("list files", err)
	}
	return files, nil
}

func (s *File) removeBlob(ctx context.Context, file model.UserFile) {
	if err := s.storage.Delete(ctx, file.FilePath); err != nil {
		s.logger.Error("File service: failed to remove blob",
			"file_id", file.FileID,
			"key", file.FilePath,
			"error", err.Error())
	}
}
