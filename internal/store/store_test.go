package store_test

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store/storetest"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aptitude.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='session_records'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "session_records" {
		t.Errorf("table name = %q, want 'session_records'", name)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aptitude.db")
	ctx := context.Background()
	start := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SessionRepo(nil).Append(ctx, storetest.Record("kept", start)); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	recs, err := s.SessionRepo(nil).ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "kept" {
		t.Errorf("records after reopen = %v, want [kept]", recs)
	}
}

func TestSessionRepo(t *testing.T) {
	var current *store.Store
	storetest.Run(t, storetest.Suite{
		Open: func(t *testing.T) store.SessionRepo {
			current = openTestStore(t)
			return current.SessionRepo(nil)
		},
		Corrupt: func(t *testing.T) {
			_, err := current.DB().Exec(
				`INSERT INTO session_records (collection, session_id, game_mode, started_at, score, accuracy, payload)
				 VALUES (?, 'broken', 'RAPID_FIRE', ?, 0, 0, '{not json')`,
				store.CollectionKey, time.Now())
			if err != nil {
				t.Fatalf("insert corrupted row: %v", err)
			}
		},
	})
}

func TestCorruptedEntryIsLogged(t *testing.T) {
	s := openTestStore(t)
	var buf bytes.Buffer
	repo := s.SessionRepo(log.New(&buf, "", 0))

	_, err := s.DB().Exec(
		`INSERT INTO session_records (collection, session_id, game_mode, started_at, score, accuracy, payload)
		 VALUES (?, 'broken', 'SURVIVAL', ?, 0, 0, '[]')`,
		store.CollectionKey, time.Now())
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	recs, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
	if !bytes.Contains(buf.Bytes(), []byte("broken")) {
		t.Errorf("log = %q, want a warning naming the corrupted session", buf.String())
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "x.db")
		t.Setenv("APTITUDE_DB", want)
		got, err := store.DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != want {
			t.Errorf("DefaultDBPath = %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("APTITUDE_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := store.DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if want := filepath.Join(dir, "aptitude", "aptitude.db"); got != want {
			t.Errorf("DefaultDBPath = %q, want %q", got, want)
		}
	})
}
