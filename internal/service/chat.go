package service

import (
	"context"
	"errors"
	"time"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// Chat manages the directed chat ledger and derives contacts from it.
type Chat struct {
	chatStore model.ChatStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewChat(
	chatStore model.ChatStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Chat {
	return &Chat{
		chatStore: chatStore,
		userStore: userStore,
		logger:    logger,
	}
}

// CreateChat starts a chat from sender to receiver. A chat in the opposite
// direction is a different chat and does not conflict.
func (s *Chat) CreateChat(ctx context.Context, sender, receiver string) (model.Chat, error) {
	if sender == receiver {
		return model.Chat{}, apierrors.NewErrValidation("cannot start a chat with yourself")
	}

	if _, err := s.userStore.GetByUsername(ctx, receiver); err != nil {
		return model.Chat{}, lookupUser(err, receiver)
	}

	_, err := s.chatStore.GetByParticipants(ctx, sender, receiver)
	switch {
	case err == nil:
		return model.Chat{}, apierrors.NewErrChatExists(sender, receiver)
	case errors.Is(err, model.ErrInconsistentState):
		s.logger.Error("Chat service: duplicate chats for ordered pair",
			"sender", sender,
			"receiver", receiver)
		return model.Chat{}, storeError("check existing chat", err)
	case !errors.Is(err, model.ErrNotFound):
		return model.Chat{}, storeError("check existing chat", err)
	}

	now := time.Now()
	chat, err := s.chatStore.Create(ctx, model.Chat{
		ChatID:   newID(now, sender, receiver),
		Started:  now,
		Sender:   sender,
		Receiver: receiver,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.Chat{}, apierrors.NewErrChatExists(sender, receiver)
	}
	if err != nil {
		return model.Chat{}, storeError("create chat", err)
	}

	s.logger.Info("Chat service: chat created",
		"chat_id", chat.ChatID,
		"sender", sender,
		"receiver", receiver)

	return chat, nil
}

// GetChat returns the chat if username takes part in it.
func (s *Chat) GetChat(ctx context.Context, username, chatID string) (model.Chat, error) {
	chat, err := s.chatStore.GetByID(ctx, chatID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Chat{}, apierrors.NewErrChatNotFound(chatID)
	}
	if err != nil {
		return model.Chat{}, storeError("get chat", err)
	}

	if !chat.HasParticipant(username) {
		return model.Chat{}, apierrors.NewErrNotParticipant(chatID)
	}

	return chat, nil
}

// ListChats returns the chats started by username followed by the chats
// username received.
func (s *Chat) ListChats(ctx context.Context, username string) ([]model.Chat, error) {
	sent, err := s.chatStore.ListBySender(ctx, username)
	if err != nil {
		return nil, storeError("list sent chats", err)
	}

	received, err := s.chatStore.ListByReceiver(ctx, username)
	if err != nil {
		return nil, storeError("list received chats", err)
	}

	return append(sent, received...), nil
}

// DeleteChat removes the chat together with its messages.
func (s *Chat) DeleteChat(ctx context.Context, username, chatID string) error {
	chat, err := s.GetChat(ctx, username, chatID)
	if err != nil {
		return err
	}

	err = s.chatStore.Delete(ctx, chat.ChatID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrChatNotFound(chatID)
	}
	if err != nil {
		return storeError("delete chat", err)
	}

	s.logger.Info("Chat service: chat deleted",
		"chat_id", chatID,
		"username", username)

	return nil
}

// Contacts maps every chat of username to the other participant's public
// profile. The order follows ListChats and duplicates are kept.
func (s *Chat) Contacts(ctx context.Context, username string) ([]model.PublicProfile, error) {
	chats, err := s.ListChats(ctx, username)
	if err != nil {
		return nil, err
	}

	contacts := make([]model.PublicProfile, 0, len(chats))
	for _, chat := range chats {
		other := chat.Counterparty(username)

		user, err := s.userStore.GetByUsername(ctx, other)
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Warn("Chat service: chat references missing user",
				"chat_id", chat.ChatID,
				"username", other)
			continue
		}
		if err != nil {
			return nil, storeError("get contact", err)
		}

		contacts = append(contacts, user.Profile())
	}

	return contacts, nil
}
