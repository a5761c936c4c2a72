package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTripAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Set(ctx, "petcare_orders", `[{"id":"order-1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// otra instancia sobre el mismo dir ve lo persistido
	s2, _ := NewStore(dir)
	v, ok, err := s2.Get(ctx, "petcare_orders")
	if err != nil || !ok || v != `[{"id":"order-1"}]` {
		t.Fatalf("unexpected Get v=%q ok=%v err=%v", v, ok, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "petcare_orders.json" {
		t.Fatalf("expected only the final file, got %v", entries)
	}
}

func TestStore_MissingAndRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := NewStore(t.TempDir())

	if _, ok, err := s.Get(ctx, "petcare_user"); ok || err != nil {
		t.Fatalf("expected missing, got ok=%v err=%v", ok, err)
	}
	// remove de algo inexistente no es error
	if err := s.Remove(ctx, "petcare_user"); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}

	_ = s.Set(ctx, "petcare_user", "{}")
	if err := s.Remove(ctx, "petcare_user"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.dir, "petcare_user.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file deleted, stat err=%v", err)
	}
}

func TestStore_RejectsPathTraversal(t *testing.T) {
	s, _ := NewStore(t.TempDir())

	if err := s.Set(context.Background(), "../escape", "x"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}
