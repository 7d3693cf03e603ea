package storage

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver with FTS5 compiled in
)

// New opens a SQLite database at the given path. WAL mode keeps the single
// sequential batch writer from blocking concurrent readers.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the required tables. It is idempotent and can be run
// multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS document_chunks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_file TEXT NOT NULL,
			chunk_number INTEGER NOT NULL,
			content TEXT NOT NULL,
			file_hash TEXT NOT NULL,
			last_modified TEXT NOT NULL,
			chunked BOOLEAN NOT NULL DEFAULT 0,
			vector_embedded BOOLEAN NOT NULL DEFAULT 0,
			page_number INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_document_chunks_file_hash
			ON document_chunks(file_hash);`,
		`CREATE INDEX IF NOT EXISTS idx_document_chunks_vector_embedded
			ON document_chunks(vector_embedded);`,
		// Standalone FTS5 table sharing rowids with document_chunks. Rows are
		// written in the same transaction as the base table; the core never
		// updates or deletes chunk content, so no sync triggers are needed.
		`CREATE VIRTUAL TABLE IF NOT EXISTS chunks_fts
			USING fts5(content, tokenize='porter unicode61');`,
		`CREATE TABLE IF NOT EXISTS chat_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_input TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
