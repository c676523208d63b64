// Package storage opens the admin console's local stores.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	adminsqlite "github.com/aopps/admin-console/internal/services/admin/storage/sqlite"
)

// DefaultDBPath is used when no audit database path is configured.
var DefaultDBPath = filepath.Join("data", "admin.db")

// OpenStore opens the SQLite audit log at path, creating missing parent
// directories. A blank path selects DefaultDBPath.
func OpenStore(path string) (*adminsqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultDBPath
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir for %s: %w", path, err)
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store %s: %w", path, err)
	}
	return store, nil
}
