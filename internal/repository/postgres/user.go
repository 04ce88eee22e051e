package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `username, password_hash, is_admin, public_key, private_key, description, display_name,
	primary_color, secondary_color, tertiary_color, profile_picture_id, created_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	return insertUser(ctx, r.db, user)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return getUser(ctx, r.db, username)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, username string, params model.UpdateProfileParams) error {
	const query = `
        UPDATE users SET
            display_name       = COALESCE($2, display_name),
            description        = COALESCE($3, description),
            primary_color      = COALESCE($4, primary_color),
            secondary_color    = COALESCE($5, secondary_color),
            tertiary_color     = COALESCE($6, tertiary_color),
            profile_picture_id = COALESCE($7, profile_picture_id)
        WHERE username = $1
    `

	tag, err := r.db.Exec(ctx, query, username,
		params.DisplayName, params.Description, params.PrimaryColor,
		params.SecondaryColor, params.TertiaryColor, params.ProfilePictureID,
	)
	if err != nil {
		return mapWriteError(err, "update user profile")
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2 WHERE username = $1`

	tag, err := r.db.Exec(ctx, query, username, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func insertUser(ctx context.Context, q querier, user model.User) (model.User, error) {
	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
			  RETURNING ` + userColumns

	saved, err := scanUser(q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.IsAdmin, user.PublicKey, user.PrivateKey,
		user.Description, user.DisplayName, user.PrimaryColor, user.SecondaryColor,
		user.TertiaryColor, user.ProfilePictureID,
	))
	if err != nil {
		return model.User{}, mapWriteError(err, "create user")
	}
	return saved, nil
}

func getUser(ctx context.Context, q querier, username string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		return model.User{}, mapReadError(err, "get user by username")
	}
	return user, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.Username, &u.PasswordHash, &u.IsAdmin, &u.PublicKey, &u.PrivateKey,
		&u.Description, &u.DisplayName, &u.PrimaryColor, &u.SecondaryColor,
		&u.TertiaryColor, &u.ProfilePictureID, &u.CreatedAt,
	)
	return u, err
}
