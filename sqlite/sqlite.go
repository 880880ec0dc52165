// Package sqlite provides SQLite-based storage implementations for docdex
// services: the document store and the word index.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"docdex"

	"github.com/ncruces/go-sqlite3"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention instead of failing with
	// "database is locked".
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Foreign keys must be on for cascading association cleanup.
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// Table DDL. AUTOINCREMENT keeps document and word IDs monotonic: a rowid
// freed by a reset is never handed out again within the same table
// generation. doc_words rows are owned jointly by their word and document
// and disappear with either.
const (
	docsSchema = `
		CREATE TABLE IF NOT EXISTS docs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			section TEXT NOT NULL,
			title TEXT NOT NULL,
			text BLOB NOT NULL,
			content_hash TEXT NOT NULL DEFAULT '',
			uri TEXT NOT NULL,
			UNIQUE (section, title),
			UNIQUE (uri)
		);
	`

	indexSchema = `
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS doc_words (
			word_id INTEGER NOT NULL REFERENCES words(id) ON DELETE CASCADE,
			doc_id INTEGER NOT NULL REFERENCES docs(id) ON DELETE CASCADE,
			is_title BOOLEAN NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_doc_words_word_id ON doc_words(word_id);
	`
)

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	_, err := db.db.Exec(docsSchema + indexSchema)
	return err
}

// conflictError maps a SQLite constraint violation to ECONFLICT with the
// given message. Other errors pass through unchanged.
func conflictError(err error, format string, args ...any) error {
	var serr *sqlite3.Error
	if errors.As(err, &serr) && serr.Code() == sqlite3.CONSTRAINT {
		return docdex.Errorf(docdex.ECONFLICT, format, args...)
	}
	return err
}
