package sqlitemigrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyMigrationsRecordsApplied(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;"),
		},
		"README.md": &fstest.MapFile{Data: []byte("ignored")},
	}

	if err := ApplyMigrations(context.Background(), db, migrations); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 1 {
		t.Fatalf("expected 1 migration row, got %d", rows)
	}
	if !tableExists(t, db, "items") {
		t.Fatal("expected applied table to exist")
	}
}

func TestApplyMigrationsSkipsAlreadyApplied(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);"),
		},
	}
	for i := 0; i < 2; i++ {
		if err := ApplyMigrations(context.Background(), db, migrations); err != nil {
			t.Fatalf("apply migrations pass %d: %v", i, err)
		}
	}

	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 1 {
		t.Fatalf("expected single migration row after replay, got %d", rows)
	}
}

func TestApplyMigrationsDoesNotRecordFailedMigration(t *testing.T) {
	db := openInMemoryDB(t)

	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT table things(id INT);")},
	}
	if err := ApplyMigrations(context.Background(), db, bad); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if rows := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); rows != 0 {
		t.Fatalf("expected failed migration to stay unrecorded, got %d rows", rows)
	}
}

func TestApplyMigrationsRequiresInputs(t *testing.T) {
	if err := ApplyMigrations(context.Background(), nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
	if err := ApplyMigrations(context.Background(), openInMemoryDB(t), nil); err == nil {
		t.Fatal("expected error for nil fs")
	}
}

func TestExtractUpMigration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "SELECT 1;", want: "SELECT 1;"},
		{name: "up only", content: "-- +migrate Up\nSELECT 1;", want: "\nSELECT 1;"},
		{name: "up and down", content: "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", want: "\nSELECT 1;\n"},
	}
	for _, tc := range tests {
		if got := ExtractUpMigration(tc.content); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("check table %s: %v", name, err)
	}
	return true
}
