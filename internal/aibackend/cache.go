package aibackend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

const suggestionKeyPrefix = "ai-suggestion::"

// ErrCacheMiss is returned by a SuggestionCache that does not hold the key.
var ErrCacheMiss = errors.New("cache miss")

// SuggestionCache keeps raw AI server responses keyed by the request they answer.
type SuggestionCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CacheKey derives the cache key from the request body.
func CacheKey(requestBody []byte) string {
	sum := sha256.Sum256(requestBody)
	return suggestionKeyPrefix + hex.EncodeToString(sum[:])
}

type RedisCache struct {
	redisClient *redis.Client
}

func NewRedisCache(redisClient *redis.Client) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.redisClient.Set(ctx, key, value, ttl).Err()
}

type MemoryCache struct {
	cache *freecache.Cache
}

func NewMemoryCache(sizeMegabytes int) *MemoryCache {
	megabyte := 1024 * 1024
	return &MemoryCache{
		cache: freecache.NewCache(sizeMegabytes * megabyte),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	val, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrCacheMiss
	}
	return val, err
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	expireSeconds := int(ttl.Seconds())
	if ttl > 0 && expireSeconds == 0 {
		expireSeconds = 1
	}
	return c.cache.Set([]byte(key), value, expireSeconds)
}

// NoopCache never holds anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}
