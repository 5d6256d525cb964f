package sqlitestore

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetDelete(t *testing.T) {
	store := openTestStore(t)

	key := []byte("ledger|account:alice.near")
	value := []byte{1, 2, 3, 4}

	if got := store.Get(key); got != nil {
		t.Errorf("Expected nil for missing key, got %v", got)
	}
	if store.Has(key) {
		t.Error("Expected Has to be false before Set")
	}

	store.Set(key, value)
	if got := store.Get(key); !bytes.Equal(got, value) {
		t.Errorf("Expected %v, got %v", value, got)
	}
	if !store.Has(key) {
		t.Error("Expected Has to be true after Set")
	}

	store.Delete(key)
	if got := store.Get(key); got != nil {
		t.Errorf("Expected nil after Delete, got %v", got)
	}
}

func TestOverwrite(t *testing.T) {
	store := openTestStore(t)

	key := []byte("config|global")
	store.Set(key, []byte("first"))
	store.Set(key, []byte("second"))

	if got := store.Get(key); !bytes.Equal(got, []byte("second")) {
		t.Errorf("Expected overwrite to win, got %q", got)
	}
}

func TestIterPrefix(t *testing.T) {
	store := openTestStore(t)

	store.Set([]byte("ledger|account:alice"), []byte("a"))
	store.Set([]byte("ledger|account:bob"), []byte("b"))
	store.Set([]byte("ledger|treasury"), []byte("t"))
	store.Set([]byte("config|global"), []byte("c"))

	var keys []string
	store.IterPrefix([]byte("ledger|account:"), func(key, value []byte) bool {
		keys = append(keys, string(key))
		return true
	})

	if len(keys) != 2 {
		t.Fatalf("Expected 2 keys, got %d: %v", len(keys), keys)
	}
	if keys[0] != "ledger|account:alice" || keys[1] != "ledger|account:bob" {
		t.Errorf("Unexpected iteration order: %v", keys)
	}
}

func TestIterPrefixStops(t *testing.T) {
	store := openTestStore(t)

	store.Set([]byte("a1"), []byte("1"))
	store.Set([]byte("a2"), []byte("2"))
	store.Set([]byte("a3"), []byte("3"))

	count := 0
	store.IterPrefix([]byte("a"), func(key, value []byte) bool {
		count++
		return count < 2
	})

	if count != 2 {
		t.Errorf("Expected callback to stop after 2 calls, got %d", count)
	}
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Set([]byte("ledger|treasury"), []byte{42, 0, 0, 0, 0, 0, 0, 0})
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	got := reopened.Get([]byte("ledger|treasury"))
	if !bytes.Equal(got, []byte{42, 0, 0, 0, 0, 0, 0, 0}) {
		t.Errorf("Expected persisted value after reopen, got %v", got)
	}
}
