package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	// Close releases background resources.
	Close() error
}

// Config selects and tunes the backend.
type Config struct {
	Backend       string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	TTL           time.Duration `env:"CACHE_TTL" env-default:"10m"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379" validate:"required_if=Backend redis"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	Namespace     string        `env:"CACHE_NAMESPACE" env-default:"countryview"`
}

// New builds the backend named in cfg.
func New[V any](cfg Config) (Cache[V], error) {
	switch cfg.Backend {
	case RedisBackend:
		return NewRedisCache[V](&RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			PoolSize:  10,
			Namespace: cfg.Namespace,
		}), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}
