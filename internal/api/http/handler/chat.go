package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// ChatService defines chat ledger and contact operations.
type ChatService interface {
	CreateChat(ctx context.Context, sender, receiver string) (model.Chat, error)
	ListChats(ctx context.Context, username string) ([]model.Chat, error)
	DeleteChat(ctx context.Context, username, chatID string) error
	Contacts(ctx context.Context, username string) ([]model.PublicProfile, error)
}

// Chat handles chat and contact endpoints.
type Chat struct {
	chatService    ChatService
	messageService MessageService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewChat creates a new Chat handler.
func NewChat(
	chatService ChatService,
	messageService MessageService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Chat {
	return &Chat{
		chatService:    chatService,
		messageService: messageService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createChatRequest struct {
	Receiver string `json:"receiver"`
}

type chatIDRequest struct {
	ChatID string `json:"chat_id"`
}

func (h *Chat) Create(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req createChatRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("receiver", req.Receiver); err != nil {
		return err
	}

	chat, err := h.chatService.CreateChat(c.Request().Context(), user.Username, req.Receiver)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newChatResponse(chat))
}

func (h *Chat) List(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	chats, err := h.chatService.ListChats(c.Request().Context(), user.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newChatResponses(chats))
}

func (h *Chat) Delete(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req chatIDRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("chat_id", req.ChatID); err != nil {
		return err
	}

	err = h.chatService.DeleteChat(c.Request().Context(), user.Username, req.ChatID)
	return writeStatus(c, h.logger, "delete chat", err)
}

// Messages lists a chat's messages. The content stays encrypted.
func (h *Chat) Messages(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req chatIDRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := requireFields("chat_id", req.ChatID); err != nil {
		return err
	}

	messages, err := h.messageService.List(c.Request().Context(), user.Username, req.ChatID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMessageResponses(messages))
}

func (h *Chat) Contacts(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	contacts, err := h.chatService.Contacts(c.Request().Context(), user.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProfileResponses(contacts))
}
