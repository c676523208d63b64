package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	adminstorage "github.com/aopps/admin-console/internal/services/admin/storage"
)

func TestOpenStorePersistsAuditEntries(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nested", "admin.db")
	ctx := context.Background()

	store, err := OpenStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.RecordAction(ctx, adminstorage.AuditEntry{
		Action:  "flight.delete",
		Target:  "AI101",
		Outcome: adminstorage.OutcomeRejected,
	}); err != nil {
		t.Fatalf("record action: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := OpenStore(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	entries, err := reopened.ListRecentActions(ctx, 10)
	if err != nil {
		t.Fatalf("list actions: %v", err)
	}
	if len(entries) != 1 || entries[0].Target != "AI101" || entries[0].Outcome != adminstorage.OutcomeRejected {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestOpenStoreErrors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "parent is a file", path: filepath.Join(blocker, "admin.db"), want: "create storage dir"},
		{name: "path is a directory", path: root, want: "open admin sqlite store"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := OpenStore(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want %q", err, tc.want)
			}
		})
	}
}
