package postgres

import (
	"context"
	"os"
	"testing"
)

// Requiere una base real: PETCARE_TEST_DB_DSN=postgres://... go test ./...
func TestKVStore_Postgres(t *testing.T) {
	dsn := os.Getenv("PETCARE_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("PETCARE_TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	s := NewKVStore(db)
	key := "petcare_test_" + t.Name()
	t.Cleanup(func() { _ = s.Remove(ctx, key) })

	if err := s.Set(ctx, key, "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, key, "v2"); err != nil {
		t.Fatalf("Set (upsert): %v", err)
	}

	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok || v != "v2" {
		t.Fatalf("unexpected Get v=%q ok=%v err=%v", v, ok, err)
	}

	if err := s.Remove(ctx, key); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, key); ok {
		t.Fatalf("expected key removed")
	}
}
