package store

import (
	"testing"
)

func TestMemoryOnlyMode(t *testing.T) {
	s, err := Open("")
	if err != nil {
		t.Fatalf("failed to open memory store: %v", err)
	}
	defer s.Close()

	if _, ok := s.ReadString("missing"); ok {
		t.Error("expected miss for absent key")
	}

	if err := s.WriteString("k", "v"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	v, ok := s.ReadString("k")
	if !ok || v != "v" {
		t.Errorf("expected v, got %q ok=%v", v, ok)
	}
}

func TestPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := s.WriteString("watchlist", `[{"imdbID":"tt0076759"}]`); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer s2.Close()

	v, ok := s2.ReadString("watchlist")
	if !ok {
		t.Fatal("expected key to survive reopen")
	}
	if v != `[{"imdbID":"tt0076759"}]` {
		t.Errorf("unexpected value %q", v)
	}
}

func TestOverwrite(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	s.WriteString("k", "old")
	s.WriteString("k", "new")

	v, _ := s.ReadString("k")
	if v != "new" {
		t.Errorf("expected new, got %q", v)
	}
}
