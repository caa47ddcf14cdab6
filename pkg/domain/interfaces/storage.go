package interfaces

//go:generate moq -out mocks/storage_mock.go -pkg mocks . Storage RateLimiter

import "context"

// Storage persists uploaded media. Save returns the path relative to the
// media root.
type Storage interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Delete(ctx context.Context, relPath string) error
}

// RateLimiter reports whether another request under the key is allowed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
