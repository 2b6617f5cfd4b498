package storage

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"dinewise/internal/config"
	"dinewise/internal/logging"
	"dinewise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenSQLiteMigrateAndPing(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"), logging.Discard())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Migrate())
	require.NoError(t, store.Ping(context.Background()))

	for _, table := range []any{&models.Restaurant{}, &models.OpeningHour{}, &models.Reservation{}, &models.QueueEntry{}} {
		assert.True(t, store.DB.Migrator().HasTable(table))
	}
	assert.Nil(t, store.Redis)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"}, config.RedisConfig{}, logging.Discard())
	assert.Error(t, err)
}

func TestGormLogsThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.Config{Level: "debug", Format: "json"})
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"), log)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate())
	buf.Reset()

	var r models.Restaurant
	err = store.DB.Take(&r, 404).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, buf.String(), "a plain miss is not logged")

	require.Error(t, store.DB.Exec("SELECT * FROM no_such_table").Error)
	assert.Contains(t, buf.String(), "no_such_table")
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.NotContains(t, buf.String(), `\u001b`, "no terminal colours")
}
