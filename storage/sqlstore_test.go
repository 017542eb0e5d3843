package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func newSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLStore(db)
	if err != nil {
		t.Fatalf("NewSQLStore: %v", err)
	}
	return store
}

func TestSQLStoreRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)

	if _, ok, err := s.Get("users"); err != nil || ok {
		t.Fatalf("Get on empty store = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set("users", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("users", `[{"id":"1"},{"id":"2"}]`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	v, ok, err := s.Get("users")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"1"},{"id":"2"}]` {
		t.Fatalf("Get returned %q", v)
	}

	if err := s.RemoveMany([]string{"users", "current_user"}); err != nil {
		t.Fatalf("RemoveMany: %v", err)
	}
	if _, ok, _ := s.Get("users"); ok {
		t.Fatal("users survived RemoveMany")
	}
}
