// Package session persists the current identity between process runs.
//
// The store is a tiny key-value table in a local sqlite database. The
// serialized identity lives under common.SessionIdentityKey; it is read
// once at startup and rewritten on every successful credential-affecting
// operation.
package session

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"blogify/internal/client/migrations"
)

// Store is the persistence surface the auth service depends on.
// A missing key yields (nil, nil), not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Open opens (creating if needed) the session database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
