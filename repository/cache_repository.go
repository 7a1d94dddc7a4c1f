package repository

import "context"

type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Delete(key string) error
}

// Pinger is implemented by caches that can report their own health.
type Pinger interface {
	Ping(ctx context.Context) error
}
