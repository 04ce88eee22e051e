package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/yokai-server/internal/model"
)

var _ model.FileStore = (*FileRepository)(nil)

const fileColumns = `file_id, name, file_path, file_owner, created_at`

type FileRepository struct {
	db *Connection
}

func NewFileRepository(db *Connection) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file model.UserFile) (model.UserFile, error) {
	query := `INSERT INTO user_files (` + fileColumns + `)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING ` + fileColumns

	saved, err := scanFile(r.db.QueryRow(ctx, query, file.FileID, file.Name, file.FilePath, file.Owner))
	if err != nil {
		return model.UserFile{}, mapWriteError(err, "create file")
	}
	return saved, nil
}

func (r *FileRepository) GetByID(ctx context.Context, fileID string) (model.UserFile, error) {
	query := `SELECT ` + fileColumns + ` FROM user_files WHERE file_id = $1`

	file, err := scanFile(r.db.QueryRow(ctx, query, fileID))
	if err != nil {
		return model.UserFile{}, mapReadError(err, "get file by id")
	}
	return file, nil
}

func (r *FileRepository) ListByOwner(ctx context.Context, owner string) ([]model.UserFile, error) {
	query := `SELECT ` + fileColumns + ` FROM user_files WHERE file_owner = $1 ORDER BY created_at, file_id`

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	files, err := collectFiles(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

func (r *FileRepository) Delete(ctx context.Context, fileID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_files WHERE file_id = $1`, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanFile(row pgx.Row) (model.UserFile, error) {
	var f model.UserFile
	err := row.Scan(&f.FileID, &f.Name, &f.FilePath, &f.Owner, &f.CreatedAt)
	return f, err
}

func collectFiles(rows pgx.Rows) ([]model.UserFile, error) {
	var files []model.UserFile
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
