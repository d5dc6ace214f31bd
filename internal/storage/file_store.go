package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"globalstore/internal/domain"
)

type fileStore struct {
	path string
}

// NewFileStore creates a CartStore that keeps the cart document as a
// single JSON file at path. Writes go through a temp file and an atomic
// rename so a crash never leaves a half-written document behind.
func NewFileStore(path string) CartStore {
	return &fileStore{path: path}
}

// Load reads and decodes the stored cart document.
func (s *fileStore) Load(ctx context.Context) (*domain.CartState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	state := &domain.CartState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}

	return state, nil
}

// Save serializes the cart document and replaces the file atomically.
func (s *fileStore) Save(ctx context.Context, state *domain.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode cart state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cart file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace cart file: %w", err)
	}

	return nil
}

// Clear removes the stored document. Clearing an empty slot is a no-op.
func (s *fileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cart file: %w", err)
	}
	return nil
}
