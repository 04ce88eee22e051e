package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/api/http/middleware"
	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// FileService defines file operations. Every call is scoped to the owner.
type FileService interface {
	Upload(ctx context.Context, owner, name string, reader io.Reader) (model.UserFile, error)
	Download(ctx context.Context, owner, fileID string) (model.UserFile, io.ReadCloser, error)
	Delete(ctx context.Context, owner, fileID string) error
	List(ctx context.Context, owner string) ([]model.UserFile, error)
}

// File handles file uploads and downloads.
type File struct {
	fileService    FileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewFile creates a new File handler.
func NewFile(fileService FileService, contextManager model.ContextManager, logger *logger.Logger) *File {
	return &File{
		fileService:    fileService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type fileIDRequest struct {
	FileID string `json:"file_id"`
}

// Upload takes a multipart form with a "file" part. The name comes from the
// "name" field, the JSON "json" field, or the uploaded file name.
func (h *File) Upload(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return apierrors.NewErrValidation("file is required")
	}

	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uploadName(c)
	if name == "" {
		name = header.Filename
	}

	h.logger.Debug("File handler: processing upload",
		"username", user.Username,
		"size", header.Size)

	file, err := h.fileService.Upload(c.Request().Context(), user.Username, name, src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newFileResponse(file))
}

func uploadName(c echo.Context) string {
	if name := c.FormValue("name"); name != "" {
		return name
	}

	var meta struct {
		Name string `json:"name"`
	}
	if raw := c.FormValue(middleware.MetadataFormField); raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta); err == nil {
			return meta.Name
		}
	}
	return ""
}

// Serve streams an owned file.
func (h *File) Serve(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req fileIDRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("file_id", req.FileID); err != nil {
		return err
	}

	file, reader, err := h.fileService.Download(c.Request().Context(), user.Username, req.FileID)
	if err != nil {
		return err
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, reader)
}

func (h *File) List(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	files, err := h.fileService.List(c.Request().Context(), user.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newFileResponses(files))
}

func (h *File) Delete(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req fileIDRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("file_id", req.FileID); err != nil {
		return err
	}

	err = h.fileService.Delete(c.Request().Context(), user.Username, req.FileID)
	return writeStatus(c, h.logger, "delete file", err)
}
