// Package store provides the client's local device storage: a small
// key-value store holding serialized records such as the persisted session.
package store

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("store: key not found")

// KV is a string key-value store with last-write-wins semantics.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) (string, error)

	// Set stores value under key, replacing any prior value.
	Set(key, value string) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(key string) error

	// Close releases the underlying storage.
	Close() error
}
