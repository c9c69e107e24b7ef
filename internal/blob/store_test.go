package blob

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save("lecture notes.pdf", []byte("payload"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(name, "_lecture notes.pdf") {
		t.Errorf("stored name should keep the original filename, got %q", name)
	}

	data, err := store.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected content %q", data)
	}

	existed, err := store.Remove(name)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !existed {
		t.Error("expected remove to report the blob existed")
	}
}

func TestStoreRemoveMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	existed, err := store.Remove("never-saved.bin")
	if err != nil {
		t.Fatalf("removing a missing blob must be soft: %v", err)
	}
	if existed {
		t.Error("expected existed=false for a missing blob")
	}
}

func TestStoreOpenMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Open("gone.txt"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestStoreUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := store.Save("same.txt", []byte("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save("same.txt", []byte("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Error("expected distinct stored names for repeated filenames")
	}
}
