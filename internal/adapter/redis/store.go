// Package redis implements the shared counter and cache store on Redis.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store implements port.SharedStore. Every key is namespaced with prefix so
// several deployments can share one Redis.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// NewStore wraps an existing client.
func NewStore(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Get returns the counter value for key or 0 when it does not exist.
func (s *Store) Get(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Get(ctx, s.prefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// IncrBy atomically adds delta to key.
func (s *Store) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return s.client.IncrBy(ctx, s.prefix+key, delta).Result()
}

// incrWithTTL increments KEYS[1] by ARGV[1] and sets a PEXPIRE of ARGV[2]
// milliseconds when the key has none.
var incrWithTTL = redis.NewScript(`
local n = redis.call('INCRBY', KEYS[1], ARGV[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return n
`)

// IncrWithTTL atomically adds delta to key and arms ttl when the key has no
// expiry yet.
func (s *Store) IncrWithTTL(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	return incrWithTTL.Run(ctx, s.client, []string{s.prefix + key}, delta, ttl.Milliseconds()).Int64()
}

// Expire sets the TTL of key.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Expire(ctx, s.prefix+key, ttl).Err()
}

// Load returns the cached bytes for key.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Store saves value under key with ttl.
func (s *Store) Store(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, value, ttl).Err()
}

// Delete removes keys.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.prefix + k
	}
	return s.client.Del(ctx, full...).Err()
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
