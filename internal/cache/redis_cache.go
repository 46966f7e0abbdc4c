package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions holds both client-tuning and operation-level settings.
type RedisOptions struct {
	Addr            string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	OpTimeout       time.Duration // per-call timeout; defaulted if zero
	Namespace       string        // prepended to every key as "<ns>:"
}

type RedisCache[V any] struct {
	client    *redis.Client
	opTimeout time.Duration
	namespace string
}

var _ Cache[string] = (*RedisCache[string])(nil)

const scanBatch = 256

// NewRedisCache constructs and configures the client (including backoff/retries) and default timeouts.
func NewRedisCache[V any](opts *RedisOptions) *RedisCache[V] {
	timeout := opts.OpTimeout
	if timeout == 0 {
		timeout = 50 * time.Millisecond
	}
	client := redis.NewClient(&redis.Options{
		Addr:            opts.Addr,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		MaxRetries:      opts.MaxRetries,
		MinRetryBackoff: opts.MinRetryBackoff,
		MaxRetryBackoff: opts.MaxRetryBackoff,
	})
	return &RedisCache[V]{
		client:    client,
		opTimeout: timeout,
		namespace: opts.Namespace,
	}
}

// Close cleans up underlying connections.
func (r *RedisCache[V]) Close() error {
	return r.client.Close()
}

func (r *RedisCache[V]) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, ErrCacheMiss
	} else if err != nil {
		return zero, err
	}
	var val V
	if err := json.Unmarshal(data, &val); err != nil {
		return zero, err
	}
	return val, nil
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if ttl < 0 {
		ttl = 0
	}
	return r.client.Set(ctx, r.key(key), data, ttl).Err()
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Del(ctx, r.key(key)).Err()
}

// DeletePrefix walks the keyspace with SCAN, so it never blocks the server the
// way KEYS would. Each round trip gets its own timeout.
func (r *RedisCache[V]) DeletePrefix(ctx context.Context, prefix string) error {
	match := r.key(prefix) + "*"
	var cursor uint64
	for {
		opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
		keys, next, err := r.client.Scan(opCtx, cursor, match, scanBatch).Result()
		if err == nil && len(keys) > 0 {
			err = r.client.Del(opCtx, keys...).Err()
		}
		cancel()
		if err != nil {
			return err
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
