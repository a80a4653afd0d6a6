// Package tokenstore persists the per-task ownership token in an external
// key-value store consulted on every status poll. Backed by
// modernc.org/sqlite (a pure-Go sqlite driver, avoiding cgo) through the
// standard database/sql interface.
package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Token when no token is recorded for a task id.
var ErrNotFound = errors.New("tokenstore: task id not found")

// Store is a sqlite-backed key-value store mapping task id -> ownership
// token.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tokenstore: opening %s: %w", path, err)
	}
	// Writers are serialized by the worker pool's own task ids; a single
	// connection keeps sqlite's file-locking simple under modernc's driver.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS task_tokens (
			task_id TEXT PRIMARY KEY,
			token   TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("tokenstore: creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put records the token a task was submitted with.
func (s *Store) Put(ctx context.Context, taskID, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO task_tokens (task_id, token) VALUES (?, ?)
		 ON CONFLICT(task_id) DO UPDATE SET token = excluded.token`,
		taskID, token)
	if err != nil {
		return fmt.Errorf("tokenstore: storing token for task %s: %w", taskID, err)
	}
	return nil
}

// Token returns the token recorded for taskID, or ErrNotFound.
func (s *Store) Token(ctx context.Context, taskID string) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT token FROM task_tokens WHERE task_id = ?`, taskID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: looking up task %s: %w", taskID, err)
	}
	return token, nil
}

// Verify reports whether token matches the token recorded for taskID.
func (s *Store) Verify(ctx context.Context, taskID, token string) (bool, error) {
	recorded, err := s.Token(ctx, taskID)
	if err != nil {
		return false, err
	}
	return recorded == token, nil
}
