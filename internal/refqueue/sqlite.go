package refqueue

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore creates a new SQLite-backed queue.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS refqueue (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		caption TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ReadAll returns every caption in insertion order.
func (s *SQLiteStore) ReadAll(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT caption FROM refqueue ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query queue: %w", err)
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var caption string
		if err := rows.Scan(&caption); err != nil {
			return nil, fmt.Errorf("scan queue entry: %w", err)
		}
		entries = append(entries, caption)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return entries, nil
}

// ReplaceAll swaps the queue contents inside one transaction.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, entries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM refqueue"); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, "INSERT INTO refqueue (caption) VALUES (?)", entry); err != nil {
			return fmt.Errorf("insert queue entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit queue: %w", err)
	}
	return nil
}

// Append adds a caption at the end of the queue.
func (s *SQLiteStore) Append(ctx context.Context, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "INSERT INTO refqueue (caption) VALUES (?)", entry); err != nil {
		return fmt.Errorf("insert queue entry: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
