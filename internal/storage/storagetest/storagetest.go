// Package storagetest opens throwaway stores for tests.
package storagetest

import (
	"path/filepath"
	"testing"

	"dinewise/internal/logging"
	"dinewise/internal/models"
	"dinewise/internal/storage"

	"github.com/stretchr/testify/require"
)

// New returns a migrated store backed by a sqlite file in t's temp dir.
func New(t testing.TB) *storage.Store {
	t.Helper()
	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), logging.Discard())
	require.NoError(t, err)
	require.NoError(t, store.Migrate())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// Restaurant inserts a restaurant and returns it.
func Restaurant(t testing.TB, store *storage.Store, name, userID string) models.Restaurant {
	t.Helper()
	r := models.Restaurant{Name: name, UserID: userID, Password: "p"}
	require.NoError(t, store.DB.Create(&r).Error)
	return r
}
