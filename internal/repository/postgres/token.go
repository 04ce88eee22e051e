package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.TokenStore = (*TokenRepository)(nil)

type TokenRepository struct {
	db *Connection
}

func NewTokenRepository(db *Connection) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token model.APIToken) (model.APIToken, error) {
	const query = `
        INSERT INTO user_api_tokens (token_id, token, owner, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING token_id, token, owner, created_at
    `

	var saved model.APIToken
	err := r.db.QueryRow(ctx, query, token.TokenID, token.Token, token.Owner).Scan(
		&saved.TokenID, &saved.Token, &saved.Owner, &saved.CreatedAt,
	)
	if err != nil {
		return model.APIToken{}, mapWriteError(err, "create api token")
	}
	return saved, nil
}

func (r *TokenRepository) GetByToken(ctx context.Context, token string) (model.APIToken, error) {
	const query = `SELECT token_id, token, owner, created_at FROM user_api_tokens WHERE token = $1`

	var t model.APIToken
	err := r.db.QueryRow(ctx, query, token).Scan(&t.TokenID, &t.Token, &t.Owner, &t.CreatedAt)
	if err != nil {
		return model.APIToken{}, mapReadError(err, "get api token")
	}
	return t, nil
}

func (r *TokenRepository) ListByOwner(ctx context.Context, owner string) ([]model.APIToken, error) {
	const query = `
        SELECT token_id, token, owner, created_at FROM user_api_tokens
        WHERE owner = $1 ORDER BY created_at, token_id
    `

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list api tokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.APIToken
	for rows.Next() {
		var t model.APIToken
		if err := rows.Scan(&t.TokenID, &t.Token, &t.Owner, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan api token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate api tokens: %w", err)
	}

	return tokens, nil
}

func (r *TokenRepository) DeleteByToken(ctx context.Context, token string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_api_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete api token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
