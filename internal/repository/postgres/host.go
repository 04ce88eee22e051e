package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.HostStore = (*HostRepository)(nil)

type HostRepository struct {
	db *Connection
}

func NewHostRepository(db *Connection) *HostRepository {
	return &HostRepository{db: db}
}

func (r *HostRepository) Get(ctx context.Context) (model.HostInfo, error) {
	const query = `SELECT hostname, primary_color, secondary_color, tertiary_color FROM host_info`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return model.HostInfo{}, fmt.Errorf("failed to get host info: %w", err)
	}
	defer rows.Close()

	var infos []model.HostInfo
	for rows.Next() {
		var h model.HostInfo
		if err := rows.Scan(&h.Hostname, &h.PrimaryColor, &h.SecondaryColor, &h.TertiaryColor); err != nil {
			return model.HostInfo{}, fmt.Errorf("failed to scan host info: %w", err)
		}
		infos = append(infos, h)
	}
	if err := rows.Err(); err != nil {
		return model.HostInfo{}, fmt.Errorf("failed to iterate host info: %w", err)
	}

	switch len(infos) {
	case 0:
		return model.HostInfo{}, model.ErrNotFound
	case 1:
		return infos[0], nil
	default:
		return model.HostInfo{}, fmt.Errorf("%w: %d host info rows", model.ErrInconsistentState, len(infos))
	}
}

func (r *HostRepository) Create(ctx context.Context, info model.HostInfo) (model.HostInfo, error) {
	const query = `
        INSERT INTO host_info (hostname, primary_color, secondary_color, tertiary_color)
        VALUES ($1, $2, $3, $4)
        RETURNING hostname, primary_color, secondary_color, tertiary_color
    `

	var saved model.HostInfo
	err := r.db.QueryRow(ctx, query, info.Hostname, info.PrimaryColor, info.SecondaryColor, info.TertiaryColor).Scan(
		&saved.Hostname, &saved.PrimaryColor, &saved.SecondaryColor, &saved.TertiaryColor,
	)
	if err != nil {
		return model.HostInfo{}, mapWriteError(err, "create host info")
	}
	return saved, nil
}

func (r *HostRepository) Update(ctx context.Context, params model.UpdateHostParams) error {
	const query = `
        UPDATE host_info SET
            primary_color   = COALESCE($1, primary_color),
            secondary_color = COALESCE($2, secondary_color),
            tertiary_color  = COALESCE($3, tertiary_color)
    `

	tag, err := r.db.Exec(ctx, query, params.PrimaryColor, params.SecondaryColor, params.TertiaryColor)
	if err != nil {
		return fmt.Errorf("failed to update host info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
