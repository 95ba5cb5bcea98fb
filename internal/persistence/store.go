package persistence

import (
	"context"
	"errors"
)

// ErrNoSave indicates the store has no snapshot yet
var ErrNoSave = errors.New("no save present")

// Store persists encoded snapshots
type Store interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
}
