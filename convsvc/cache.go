package convsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultResultTTL is how long a cached conversion lives when the
// configuration does not say otherwise.
const DefaultResultTTL = 5 * time.Minute

// ResultCache caches rendered conversions so repeated requests for the
// same number skip the converter.
type ResultCache interface {
	// Get returns the cached text for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores text under key.
	Set(ctx context.Context, key string, text string) error
}

// CacheKey builds the cache key for one conversion. Mode and language
// are part of the key because the same input renders differently under
// each of them.
func CacheKey(mode, lang, number string) string {
	return fmt.Sprintf("sankhya:conv:%s|%s|%s", mode, lang, number)
}

// RedisResultCache stores conversion results in Redis, one key per
// mode, language and input, each with a TTL.
type RedisResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisResultCache wraps an existing Redis client. A zero ttl falls
// back to DefaultResultTTL.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	if ttl == 0 {
		ttl = DefaultResultTTL
	}
	return &RedisResultCache{Client: client, TTL: ttl}
}

func (r *RedisResultCache) Get(ctx context.Context, key string) (string, bool, error) {
	text, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (r *RedisResultCache) Set(ctx context.Context, key string, text string) error {
	return r.Client.Set(ctx, key, text, r.TTL).Err()
}

// NoopResultCache satisfies ResultCache without storing anything. It is
// used when caching is disabled in the configuration.
type NoopResultCache struct{}

func (NoopResultCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (NoopResultCache) Set(ctx context.Context, key string, text string) error {
	return nil
}
