package storage

import (
	"context"
	"errors"

	"globalstore/internal/domain"
)

var (
	// ErrNotFound indicates the storage slot holds no cart state yet.
	ErrNotFound = errors.New("no cart state stored")
)

// CartStore persists the full cart document under a single well-known
// slot. Implementations overwrite the whole document on every Save;
// concurrent external writers are resolved last-write-wins.
type CartStore interface {
	Load(ctx context.Context) (*domain.CartState, error)
	Save(ctx context.Context, state *domain.CartState) error
	Clear(ctx context.Context) error
}
