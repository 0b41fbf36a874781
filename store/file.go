package store

import (
	"connectfour/game"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the value table as a single JSON object on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, values map[game.StateID]float64) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("could not marshal value table: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to a temp file first so a crash never leaves a half-written table.
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write value table: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace value table: %w", err)
	}

	return nil
}

func (s *FileStore) Load(ctx context.Context) (map[game.StateID]float64, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read value table: %w", err)
	}

	var values map[game.StateID]float64
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value table: %w", err)
	}

	return values, nil
}
