package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sanjayconsultancy/visadesk/internal/platform/storage/sqlitemigrate"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DefaultTTL bounds how long an idle session survives.
const DefaultTTL = 7 * 24 * time.Hour

// Store provides SQLite-backed persistence for browser sessions.
type Store struct {
	sqlDB *sql.DB
	ttl   time.Duration
	now   func() time.Time
}

// Open opens and migrates a session SQLite store. A non-positive ttl uses
// DefaultTTL.
func Open(path string, ttl time.Duration) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, ttl: ttl, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the live value stored under key.
func (s *Store) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	if s == nil || s.sqlDB == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}
	var value string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM web_session_values
		 WHERE session_id = ? AND key = ? AND expires_at > ?`,
		sessionID, key, s.now().UTC().UnixMilli(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session value: %w", err)
	}
	return value, true, nil
}

// Set upserts key and slides the expiry of every key in the session.
func (s *Store) Set(ctx context.Context, sessionID, key, value string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(key) == "" {
		return fmt.Errorf("session id and key are required")
	}
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl).UnixMilli()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set session value: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO web_session_values (session_id, key, value, updated_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id, key) DO UPDATE SET
		    value = excluded.value,
		    updated_at = excluded.updated_at,
		    expires_at = excluded.expires_at`,
		sessionID, key, value, now.UnixMilli(), expiresAt,
	); err != nil {
		return fmt.Errorf("put session value: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE web_session_values SET expires_at = ? WHERE session_id = ?`,
		expiresAt, sessionID,
	); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM web_session_values WHERE expires_at <= ?`, now.UnixMilli(),
	); err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session value: %w", err)
	}
	return nil
}

// Delete removes the given keys from the session.
func (s *Store) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	for _, key := range keys {
		if _, err := s.sqlDB.ExecContext(ctx,
			`DELETE FROM web_session_values WHERE session_id = ? AND key = ?`,
			sessionID, key,
		); err != nil {
			return fmt.Errorf("delete session value: %w", err)
		}
	}
	return nil
}
