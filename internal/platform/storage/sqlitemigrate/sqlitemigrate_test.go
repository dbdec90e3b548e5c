package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countLedger(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatalf("count ledger: %v", err)
	}
	return n
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		t.Fatalf("lookup table %s: %v", name, err)
	}
	return true
}

func TestApplyRunsInNameOrderOnce(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"002_index.sql":  {Data: []byte("-- +migrate Up\nCREATE INDEX rides_by_km ON rides(km);\n-- +migrate Down\nDROP INDEX rides_by_km;")},
		"001_rides.sql":  {Data: []byte("-- +migrate Up\nCREATE TABLE rides(id INTEGER PRIMARY KEY, km REAL);")},
		"README.md":      {Data: []byte("not a migration")},
		"nested/003.sql": {Data: []byte("CREATE TABLE ignored(id INTEGER);")},
	}

	for i := 0; i < 2; i++ {
		if err := Apply(context.Background(), db, fsys); err != nil {
			t.Fatalf("apply #%d: %v", i+1, err)
		}
	}
	if got := countLedger(t, db); got != 2 {
		t.Fatalf("ledger rows = %d, want 2", got)
	}
	if !tableExists(t, db, "rides") {
		t.Fatal("expected rides table")
	}
	if tableExists(t, db, "ignored") {
		t.Fatal("nested migration should not run")
	}
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	db := openTestDB(t)
	bad := fstest.MapFS{
		"001_bad.sql": {Data: []byte("-- +migrate Up\nCREAT TABLE rides(id INTEGER);")},
	}
	if err := Apply(context.Background(), db, bad); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if got := countLedger(t, db); got != 0 {
		t.Fatalf("ledger rows = %d, want 0", got)
	}

	fixed := fstest.MapFS{
		"001_bad.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE rides(id INTEGER PRIMARY KEY);")},
	}
	if err := Apply(context.Background(), db, fixed); err != nil {
		t.Fatalf("apply fixed migration: %v", err)
	}
	if got := countLedger(t, db); got != 1 {
		t.Fatalf("ledger rows = %d, want 1", got)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestUpSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(id INTEGER);", want: "CREATE TABLE a(id INTEGER);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(id INTEGER);", want: "\nCREATE TABLE a(id INTEGER);"},
		{name: "up and down", content: "-- +migrate Up\nUP;\n-- +migrate Down\nDOWN;", want: "\nUP;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpSection(tt.content); got != tt.want {
				t.Fatalf("UpSection = %q, want %q", got, tt.want)
			}
		})
	}
}
