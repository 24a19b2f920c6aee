package store

import (
	"context"
	"errors"
)

// KV is the byte-level storage seam under Store.
type KV interface {
	// Get returns the value stored under key. The boolean is false when the
	// key has never been written or was deleted.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var (
	// ErrTemplateNotFound is returned when no template carries the requested id.
	ErrTemplateNotFound = errors.New("store: template not found")
	// ErrResponseNotFound is returned when no response carries the requested id.
	ErrResponseNotFound = errors.New("store: response not found")
	// ErrStaleTemplate is returned when a save carries an outdated revision.
	ErrStaleTemplate = errors.New("store: template revision is stale")
	// ErrMissingID is returned when a record is saved without an id.
	ErrMissingID = errors.New("store: missing id")
	// ErrUnknownDriver is returned by OpenKV for unsupported drivers.
	ErrUnknownDriver = errors.New("store: unknown driver")
)
