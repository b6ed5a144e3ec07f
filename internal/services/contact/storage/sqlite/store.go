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

	sqlitemigrate "github.com/hustredowls/redowls.club/internal/platform/storage/sqlitemigrate"
	"github.com/hustredowls/redowls.club/internal/services/contact"
	"github.com/hustredowls/redowls.club/internal/services/contact/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	// Fixed width so stored timestamps sort lexically.
	timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

	// MaxListLimit caps one List call.
	MaxListLimit = 500
)

// Store is the SQLite contact inbox.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts a message.
func (s *Store) Create(ctx context.Context, msg contact.Message) error {
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	if strings.TrimSpace(msg.ID) == "" {
		return errors.New("message id is required")
	}
	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO contact_messages (id, full_name, email, body, locale, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.FullName, msg.Email, msg.Body, msg.Locale, createdAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List returns up to limit messages, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]contact.Message, error) {
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("storage is not configured")
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, full_name, email, body, locale, created_at FROM contact_messages ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var out []contact.Message
	for rows.Next() {
		var (
			msg       contact.Message
			createdAt string
		)
		if err := rows.Scan(&msg.ID, &msg.FullName, &msg.Email, &msg.Body, &msg.Locale, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		parsed, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %s: %w", msg.ID, err)
		}
		msg.CreatedAt = parsed
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return out, nil
}

var _ contact.Store = (*Store)(nil)
