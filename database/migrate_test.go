package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := migrations.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_init.sql", entries[0].Name())
}

func TestMigrateDB_PingError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = MigrateDB(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach database")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateDB_DriverError(t *testing.T) {
	// No expectations are set, so the first statement goose issues fails.
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = MigrateDB(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migrations")
}
