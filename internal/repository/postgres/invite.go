package postgres

import (
	"context"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.InviteStore = (*InviteRepository)(nil)

type InviteRepository struct {
	db *Connection
}

func NewInviteRepository(db *Connection) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(ctx context.Context, invite model.InviteCode) (model.InviteCode, error) {
	const query = `
        INSERT INTO invite_codes (code_id, invite_code, created_at)
        VALUES ($1, $2, NOW())
        RETURNING code_id, invite_code, created_at
    `

	var saved model.InviteCode
	err := r.db.QueryRow(ctx, query, invite.CodeID, invite.Code).Scan(&saved.CodeID, &saved.Code, &saved.CreatedAt)
	if err != nil {
		return model.InviteCode{}, mapWriteError(err, "create invite code")
	}
	return saved, nil
}
