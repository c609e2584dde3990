package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openStore migrates a throwaway database file and returns a store over it.
func openStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "session.db")
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestOpen_RunsMigrations(t *testing.T) {
	store := openStore(t)

	// The session table exists right after Open; a write must succeed.
	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
}

func TestGet_MissingKeyIsNilNil(t *testing.T) {
	store := openStore(t)

	value, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.Set(ctx, "identity", []byte("first")))
	require.NoError(t, store.Set(ctx, "identity", []byte("second")))

	value, err := store.Get(ctx, "identity")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), value)
}

func TestDelete_RemovesOnlyTheKey(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))
	require.NoError(t, store.Delete(ctx, "a"))

	gone, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, gone)

	kept, err := store.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, []byte("2"), kept)
}

func TestClear_EmptiesTheStore(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))
	require.NoError(t, store.Clear(ctx))

	for _, key := range []string{"a", "b"} {
		value, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, value)
	}
}

func TestOpen_IsIdempotentAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, "identity", []byte("x")))
	require.NoError(t, db.Close())

	// Reopening migrates again (a no-op) and keeps the data.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	value, err := NewSQLiteStore(db).Get(ctx, "identity")
	require.NoError(t, err)
	require.Equal(t, []byte("x"), value)
}
