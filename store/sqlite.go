package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Compile-time interface check.
var _ Registry = (*SQLiteRegistry)(nil)

// SQLiteRegistry stores filter blobs in a single SQLite database. Ids are
// allocated by SQLite's rowid autoincrement, so they are dense, positive,
// and never reused.
type SQLiteRegistry struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the registry database at path and ensures
// the filters table exists.
func OpenSQLite(path string) (*SQLiteRegistry, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening filter db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging filter db: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating filter db: %w", err)
	}

	return &SQLiteRegistry{db: db}, nil
}

func migrate(db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS filters (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	blob       BLOB NOT NULL,
	created_at TEXT NOT NULL
);`
	_, err := db.Exec(ddl)
	return err
}

// Save persists blob and returns its newly allocated id.
func (r *SQLiteRegistry) Save(ctx context.Context, blob []byte) (int64, error) {
	const insert = `INSERT INTO filters (blob, created_at) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, insert, blob, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return id, nil
}

// Load returns the blob stored under id.
func (r *SQLiteRegistry) Load(ctx context.Context, id int64) ([]byte, error) {
	const query = `SELECT blob FROM filters WHERE id = ?`

	var blob []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading filter %d: %w", id, err)
	}
	return blob, nil
}

// Close closes the underlying database connection.
func (r *SQLiteRegistry) Close() error {
	return r.db.Close()
}
