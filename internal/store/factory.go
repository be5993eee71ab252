package store

import (
	"fmt"
	"strings"

	"github.com/fsonmez/windpowerlib/internal/config"
)

// NewStore creates a Store based on configuration.
// Default is the in-memory store if backend is not specified.
func NewStore(cfg config.StoreConfig) (Store, error) {
	backend := strings.ToLower(cfg.Backend)

	switch backend {
	case "", "memory":
		return NewMemoryStore(), nil

	case "redis":
		return NewRedisStore(RedisConfig{
			URL:       cfg.RedisURL,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
		})

	default:
		return nil, fmt.Errorf("unsupported store backend: %s (supported: memory, redis)", backend)
	}
}
