package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type MessageRepository struct {
	db *Connection
}

func NewMessageRepository(db *Connection) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg model.Message) (model.Message, error) {
	const query = `
        INSERT INTO messages (msg_id, published, content, sender, receiver, attachment, chat_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING msg_id, published, content, sender, receiver, attachment, chat_id
    `

	var saved model.Message
	err := r.db.QueryRow(ctx, query,
		msg.MsgID, msg.Published, msg.Content, msg.Sender, msg.Receiver, msg.Attachment, msg.ChatID,
	).Scan(
		&saved.MsgID, &saved.Published, &saved.Content, &saved.Sender, &saved.Receiver,
		&saved.Attachment, &saved.ChatID,
	)
	if err != nil {
		return model.Message{}, mapWriteError(err, "create message")
	}
	return saved, nil
}

func (r *MessageRepository) ListByChat(ctx context.Context, chatID string) ([]model.Message, error) {
	const query = `
        SELECT msg_id, published, content, sender, receiver, attachment, chat_id
        FROM messages WHERE chat_id = $1 ORDER BY published, msg_id
    `

	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.MsgID, &m.Published, &m.Content, &m.Sender, &m.Receiver, &m.Attachment, &m.ChatID); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}
