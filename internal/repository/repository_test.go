package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestDB opens a private in-memory store. The single connection keeps
// every statement on the same memory database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(newTestDB(t), zap.NewNop())
	require.NoError(t, store.Bootstrap(context.Background(), "admin", "Administrador", "admin"))
	return store
}

func countRows(t *testing.T, g *Generic) int {
	t.Helper()

	rows, err := g.List(context.Background(), nil)
	require.NoError(t, err)
	return len(rows)
}
