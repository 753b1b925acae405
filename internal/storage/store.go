package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const stateDirName = "state"

// Store persists one JSON value per key under the user config directory.
// It is the desktop counterpart of a browser's per-key local storage: loads
// fall back to "absent" on a missing file, and callers are expected to treat
// every failure as non-fatal.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the OS config dir for the given app.
func NewStore(appName string) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return &Store{dir: filepath.Join(configDir, appName, stateDirName)}, nil
}

// NewStoreAt creates a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the value stored under key into out. It reports whether a
// value was present; a corrupt file counts as absent and returns the parse
// error alongside.
func (store *Store) Load(key string, out any) (bool, error) {
	rawData, err := os.ReadFile(store.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read state %q: %w", key, err)
	}
	if err := json.Unmarshal(rawData, out); err != nil {
		return false, fmt.Errorf("parse state %q: %w", key, err)
	}
	return true, nil
}

// Save writes the value under key atomically (temp file plus rename), so a
// crash mid-write never leaves a truncated state file behind.
func (store *Store) Save(key string, value any) error {
	serialized, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", key, err)
	}

	path := store.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, serialized, 0o644); err != nil {
		return fmt.Errorf("write state %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit state %q: %w", key, err)
	}
	return nil
}

// Clear removes the value stored under key. Clearing an absent key is not
// an error.
func (store *Store) Clear(key string) error {
	if err := os.Remove(store.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear state %q: %w", key, err)
	}
	return nil
}

func (store *Store) path(key string) string {
	return filepath.Join(store.dir, sanitizeKey(key)+".json")
}

// sanitizeKey maps an arbitrary key to a flat file name.
func sanitizeKey(key string) string {
	var builder strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			builder.WriteRune(r)
		default:
			builder.WriteRune('-')
		}
	}
	if builder.Len() == 0 {
		return "default"
	}
	return builder.String()
}
