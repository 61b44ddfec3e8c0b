package storage

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned by Get for a key that was never written
	ErrNotFound = errors.New("key not found")
	// ErrNotInitialized is returned by Load when the store does not exist yet
	ErrNotInitialized = errors.New("storage not initialized")
	// ErrNotLoaded is returned by data operations before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
)

// Provider is a durable key-value store holding one serialized document per
// key. Values are opaque JSON bytes.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// Copy writes every entry of src into dst and returns the number copied
func Copy(dst, src Provider) (int, error) {
	keys, err := src.Keys()
	if err != nil {
		return 0, fmt.Errorf("failed to list source keys: %w", err)
	}
	sort.Strings(keys)
	for i, key := range keys {
		value, err := src.Get(key)
		if err != nil {
			return i, fmt.Errorf("failed to read %q from source: %w", key, err)
		}
		if err := dst.Put(key, value); err != nil {
			return i, fmt.Errorf("failed to write %q to destination: %w", key, err)
		}
	}
	return len(keys), nil
}
