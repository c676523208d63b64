// Package sqlite keeps the admin audit log in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aopps/admin-console/internal/platform/storage/sqlitemigrate"
	"github.com/aopps/admin-console/internal/services/admin/storage"
	"github.com/aopps/admin-console/internal/services/admin/storage/sqlite/migrations"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// storedTimeFormat is fixed width so created_at sorts chronologically as text.
// RFC3339Nano trims trailing zeros and would not.
const storedTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// maxListLimit caps ListRecentActions.
const maxListLimit = 200

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
	newID func() string
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.NewString() },
	}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordAction appends an audit entry. ID and CreatedAt are filled in when
// unset.
func (s *Store) RecordAction(ctx context.Context, entry storage.AuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(entry.Action) == "" {
		return fmt.Errorf("audit action is required")
	}
	if strings.TrimSpace(entry.Outcome) == "" {
		return fmt.Errorf("audit outcome is required")
	}
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO audit_log (id, action, target, outcome, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Action, entry.Target, entry.Outcome, entry.Detail,
		entry.CreatedAt.UTC().Format(storedTimeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListRecentActions returns up to limit entries, newest first.
func (s *Store) ListRecentActions(ctx context.Context, limit int) ([]storage.AuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, nil
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, action, target, outcome, detail, created_at FROM audit_log ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []storage.AuditEntry
	for rows.Next() {
		var entry storage.AuditEntry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Target, &entry.Outcome, &entry.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse audit timestamp %q: %w", createdAt, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log: %w", err)
	}
	return entries, nil
}

var _ storage.Store = (*Store)(nil)
