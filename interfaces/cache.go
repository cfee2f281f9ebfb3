package interfaces

import "context"

// Cache stores values under string keys with a TTL. Only the session handle is
// stored in it; query results never are.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . Cache
type Cache[T any] interface {
	// WriteValue writes value in cache with the given TTL (ms).
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// ReadValue returns the value stored under key.
	// Returns:
	// 1) (item, nil) on success;
	// 2) (zero, entity_not_found) when the key is absent or its value cannot be unmarshalled;
	// 3) (zero, internal_server_error) when the storage read fails.
	ReadValue(ctx context.Context, key string) (T, error)

	// DeleteValue deletes the value for the given key from the cache.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the storage delete fails.
	DeleteValue(ctx context.Context, key string) error
}
