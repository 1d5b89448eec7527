package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotStore persists the full cart state between runs.
type SnapshotStore interface {
	Load() (State, error)
	Save(State) error
}

// FileStore keeps the snapshot as a JSON file. Saves go through a
// temp file and rename so a crash never leaves a half-written snapshot.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot. An absent file or the literal string
// "undefined" means an empty cart, not an error.
func (f *FileStore) Load() (State, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("read snapshot: %w", err)
	}

	body := strings.TrimSpace(string(raw))
	if body == "" || body == "undefined" {
		return State{}, nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(body), &lines); err != nil {
		return State{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return NewState(lines), nil
}

// Save writes the snapshot atomically.
func (f *FileStore) Save(s State) error {
	raw, err := json.Marshal(s.Lines())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
