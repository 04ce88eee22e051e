package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Register(ctx context.Context, inviteCode string, user model.User) (model.User, error) {
	var created model.User

	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM invite_codes WHERE invite_code = $1`, inviteCode)
		if err != nil {
			return fmt.Errorf("failed to consume invite code: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrInviteNotFound
		}

		if _, err := insertUser(ctx, tx, user); err != nil {
			return err
		}

		created, err = getUser(ctx, tx, user.Username)
		return err
	})
	if err != nil {
		return model.User{}, err
	}

	return created, nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, username string) ([]model.UserFile, error) {
	var files []model.UserFile

	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		var err error
		// Lock the row so concurrent writes for this user wait for the delete.
		if _, err = tx.Exec(ctx, `SELECT 1 FROM users WHERE username = $1 FOR UPDATE`, username); err != nil {
			return fmt.Errorf("failed to lock user: %w", err)
		}

		steps := []struct {
			action string
			query  string
		}{
			{"delete messages", `DELETE FROM messages WHERE chat_id IN (SELECT chat_id FROM chats WHERE sender = $1 OR receiver = $1)`},
			{"delete chats", `DELETE FROM chats WHERE sender = $1 OR receiver = $1`},
		}
		for _, step := range steps {
			if _, err = tx.Exec(ctx, step.query, username); err != nil {
				return fmt.Errorf("failed to %s: %w", step.action, err)
			}
		}

		rows, err := tx.Query(ctx, `DELETE FROM user_files WHERE file_owner = $1 RETURNING `+fileColumns, username)
		if err != nil {
			return fmt.Errorf("failed to delete files: %w", err)
		}
		files, err = collectFiles(rows)
		rows.Close()
		if err != nil {
			return fmt.Errorf("failed to delete files: %w", err)
		}

		if _, err = tx.Exec(ctx, `DELETE FROM user_api_tokens WHERE owner = $1`, username); err != nil {
			return fmt.Errorf("failed to delete tokens: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return files, nil
}
