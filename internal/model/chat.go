package model

import (
	"context"
	"time"
)

// Chat is a directed conversation record. Sender is whoever started it.
type Chat struct {
	ChatID   string
	Started  time.Time
	Sender   string
	Receiver string
}

// HasParticipant reports whether username is either side of the chat.
func (c Chat) HasParticipant(username string) bool {
	return c.Sender == username || c.Receiver == username
}

// Counterparty returns the participant that is not username.
func (c Chat) Counterparty(username string) string {
	if c.Sender == username {
		return c.Receiver
	}
	return c.Sender
}

// ChatStore persists chats. At most one chat exists per ordered (sender, receiver) pair.
type ChatStore interface {
	// Create returns ErrConflict if a chat already exists for the ordered pair.
	Create(ctx context.Context, chat Chat) (Chat, error)
	GetByID(ctx context.Context, chatID string) (Chat, error)
	// GetByParticipants returns ErrNotFound for no rows and ErrInconsistentState
	// if more than one chat exists for the ordered pair.
	GetByParticipants(ctx context.Context, sender, receiver string) (Chat, error)
	ListBySender(ctx context.Context, username string) ([]Chat, error)
	ListByReceiver(ctx context.Context, username string) ([]Chat, error)
	// Delete removes the chat and its messages in one transaction. Messages
	// inserted concurrently either land before the delete or fail with ErrNotFound.
	Delete(ctx context.Context, chatID string) error
}
