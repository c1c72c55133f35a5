package localstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

type store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

func exerciseStore(t *testing.T, s store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key -> ErrNotFound", func(t *testing.T) {
		if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := s.Set(ctx, "@UaiFood:cart", `{"items":[]}`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := s.Get(ctx, "@UaiFood:cart")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != `{"items":[]}` {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := s.Set(ctx, "k", "v1"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := s.Set(ctx, "k", "v2"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := s.Get(ctx, "k")
		if err != nil || got != "v2" {
			t.Fatalf("got (%q, %v)", got, err)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		if err := s.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := s.Delete(ctx, "k"); err != nil {
			t.Fatalf("second Delete failed: %v", err)
		}
		if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	exerciseStore(t, s)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.Set(ctx, "@UaiFood:token", "tok-123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get(ctx, "@UaiFood:token")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got != "tok-123" {
		t.Fatalf("got %q", got)
	}
}
