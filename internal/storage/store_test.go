package storage

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(t.TempDir())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := tempStore(t)

	saved := payload{Name: "pomodoro", Count: 3}
	if err := store.Save("timer/session", saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var loaded payload
	found, err := store.Load("timer/session", &loaded)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !found {
		t.Fatalf("value should be present")
	}
	if loaded != saved {
		t.Errorf("loaded %+v, want %+v", loaded, saved)
	}
}

func TestLoadMissingKeyReportsAbsent(t *testing.T) {
	store := tempStore(t)

	var out payload
	found, err := store.Load("no-such-key", &out)
	if err != nil {
		t.Fatalf("missing key should not error: %v", err)
	}
	if found {
		t.Errorf("missing key reported as present")
	}
}

func TestLoadCorruptFileReportsError(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(dir)
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	var out payload
	found, err := store.Load("broken", &out)
	if err == nil {
		t.Fatalf("corrupt file should surface a parse error")
	}
	if found {
		t.Errorf("corrupt file reported as present")
	}
}

func TestClearRemovesValue(t *testing.T) {
	store := tempStore(t)
	if err := store.Save("key", payload{Name: "x"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear("key"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	var out payload
	found, _ := store.Load("key", &out)
	if found {
		t.Errorf("value should be gone after clear")
	}
	if err := store.Clear("key"); err != nil {
		t.Errorf("clearing an absent key should not error: %v", err)
	}
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(dir)
	if err := store.Save("atomic", payload{Name: "y"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "atomic.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestKeysMapToFlatFileNames(t *testing.T) {
	tests := []struct {
		key      string
		fileName string
	}{
		{"pomodoro/session", "pomodoro-session.json"},
		{"simple", "simple.json"},
		{"", "default.json"},
		{"..", "...json"},
	}

	for _, tt := range tests {
		store := NewStoreAt("/base")
		got := store.path(tt.key)
		want := filepath.Join("/base", tt.fileName)
		if got != want {
			t.Errorf("path(%q) = %q, want %q", tt.key, got, want)
		}
	}
}
