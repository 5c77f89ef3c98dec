package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const blobSchema = `
CREATE TABLE IF NOT EXISTS blobs (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLite persists blobs in a single-table sqlite database.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(blobSchema); err != nil {
		return nil, fmt.Errorf("create blobs table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get blob %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
INSERT INTO blobs(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set blob %q: %w: %w", key, ErrPersistence, err)
	}
	return nil
}

func (s *SQLite) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete blob %q: %w: %w", key, ErrPersistence, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
