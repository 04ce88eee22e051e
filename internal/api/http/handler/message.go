package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// MessageService defines message operations.
type MessageService interface {
	Send(ctx context.Context, sender model.User, params model.SendMessageParams) (model.Message, error)
	Decrypt(ctx context.Context, user model.User, ciphertext string) (string, error)
	List(ctx context.Context, username, chatID string) ([]model.Message, error)
}

// Message handles sending and decrypting messages.
type Message struct {
	messageService MessageService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewMessage creates a new Message handler.
func NewMessage(messageService MessageService, contextManager model.ContextManager, logger *logger.Logger) *Message {
	return &Message{
		messageService: messageService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type sendMessageRequest struct {
	ChatID     string  `json:"chat_id"`
	Text       string  `json:"text"`
	Attachment *string `json:"attachment"`
}

type decryptRequest struct {
	Content string `json:"content"`
}

func (h *Message) Send(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("chat_id", req.ChatID, "text", req.Text); err != nil {
		return err
	}
	if req.Attachment != nil && *req.Attachment == "" {
		req.Attachment = nil
	}

	msg, err := h.messageService.Send(c.Request().Context(), user, model.SendMessageParams{
		ChatID:     req.ChatID,
		Text:       req.Text,
		Attachment: req.Attachment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newMessageResponse(msg))
}

// Decrypt opens a ciphertext with the caller's private key.
func (h *Message) Decrypt(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req decryptRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("content", req.Content); err != nil {
		return err
	}

	text, err := h.messageService.Decrypt(c.Request().Context(), user, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, decryptResponse{Text: text})
}
