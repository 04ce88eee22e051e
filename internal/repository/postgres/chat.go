package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.ChatStore = (*ChatRepository)(nil)

type ChatRepository struct {
	db *Connection
}

func NewChatRepository(db *Connection) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, chat model.Chat) (model.Chat, error) {
	const query = `
        INSERT INTO chats (chat_id, started, sender, receiver)
        VALUES ($1, $2, $3, $4)
        RETURNING chat_id, started, sender, receiver
    `

	var saved model.Chat
	err := r.db.QueryRow(ctx, query, chat.ChatID, chat.Started, chat.Sender, chat.Receiver).Scan(
		&saved.ChatID, &saved.Started, &saved.Sender, &saved.Receiver,
	)
	if err != nil {
		return model.Chat{}, mapWriteError(err, "create chat")
	}
	return saved, nil
}

func (r *ChatRepository) GetByID(ctx context.Context, chatID string) (model.Chat, error) {
	const query = `SELECT chat_id, started, sender, receiver FROM chats WHERE chat_id = $1`

	var chat model.Chat
	err := r.db.QueryRow(ctx, query, chatID).Scan(&chat.ChatID, &chat.Started, &chat.Sender, &chat.Receiver)
	if err != nil {
		return model.Chat{}, mapReadError(err, "get chat by id")
	}
	return chat, nil
}

func (r *ChatRepository) GetByParticipants(ctx context.Context, sender, receiver string) (model.Chat, error) {
	const query = `
        SELECT chat_id, started, sender, receiver FROM chats
        WHERE sender = $1 AND receiver = $2
    `

	chats, err := r.list(ctx, query, sender, receiver)
	if err != nil {
		return model.Chat{}, fmt.Errorf("failed to get chat by participants: %w", err)
	}

	switch len(chats) {
	case 0:
		return model.Chat{}, model.ErrNotFound
	case 1:
		return chats[0], nil
	default:
		return model.Chat{}, fmt.Errorf("%w: %d chats from %s to %s", model.ErrInconsistentState, len(chats), sender, receiver)
	}
}

func (r *ChatRepository) ListBySender(ctx context.Context, username string) ([]model.Chat, error) {
	const query = `
        SELECT chat_id, started, sender, receiver FROM chats
        WHERE sender = $1 ORDER BY started, chat_id
    `

	chats, err := r.list(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats by sender: %w", err)
	}
	return chats, nil
}

func (r *ChatRepository) ListByReceiver(ctx context.Context, username string) ([]model.Chat, error) {
	const query = `
        SELECT chat_id, started, sender, receiver FROM chats
        WHERE receiver = $1 ORDER BY started, chat_id
    `

	chats, err := r.list(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats by receiver: %w", err)
	}
	return chats, nil
}

func (r *ChatRepository) Delete(ctx context.Context, chatID string) error {
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		// Message inserts check the chat foreign key and wait on this lock.
		tag, err := tx.Exec(ctx, `SELECT 1 FROM chats WHERE chat_id = $1 FOR UPDATE`, chatID)
		if err != nil {
			return fmt.Errorf("failed to lock chat: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM messages WHERE chat_id = $1`, chatID); err != nil {
			return fmt.Errorf("failed to delete chat messages: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM chats WHERE chat_id = $1`, chatID); err != nil {
			return fmt.Errorf("failed to delete chat: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete chat %s: %w", chatID, err)
	}
	return nil
}

func (r *ChatRepository) list(ctx context.Context, query string, args ...any) ([]model.Chat, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectChats(rows)
}

func collectChats(rows pgx.Rows) ([]model.Chat, error) {
	var chats []model.Chat
	for rows.Next() {
		var chat model.Chat
		if err := rows.Scan(&chat.ChatID, &chat.Started, &chat.Sender, &chat.Receiver); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return chats, nil
}
