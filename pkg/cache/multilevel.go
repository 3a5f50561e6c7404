package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Global singleflight group for sharing in-flight fetches across goroutines.
var sfGroup singleflight.Group

// ErrTypeMismatch is returned when a shared in-flight result cannot be
// converted to the caller's requested type. Keys are type-prefixed, so this
// indicates two callers using the same key for different value types.
var ErrTypeMismatch = errors.New("cache: in-flight result has unexpected type")

// GetWithMultiLevelCache reads through memory, then Redis, then the origin
// fetch function, writing results back into the faster layers. Concurrent
// callers for the same key share one fetch via singleflight.
//
// A nil redisClient skips the Redis layer entirely. syncToRedis controls
// whether origin results are written back to Redis, so one node's fetch can
// serve the others.
func GetWithMultiLevelCache[T any](
	ctx context.Context,
	key string,
	memCache Cache,
	redisClient *redis.Client,
	fetch func(ctx context.Context) (T, error),
	memTTL int,
	redisTTL int,
	redisTimeout time.Duration,
	apiTimeout time.Duration,
	syncToRedis bool,
) (T, error) {
	var zero T

	// 1. Memory cache fast path, no singleflight needed.
	if val, ok := memCache.Get(key); ok {
		if typed, ok := val.(T); ok {
			return typed, nil
		}
	}

	result, err, _ := sfGroup.Do(key, func() (any, error) {
		// Double-check memory after winning the flight.
		if val, ok := memCache.Get(key); ok {
			if typed, ok := val.(T); ok {
				return typed, nil
			}
		}

		// 2. Redis layer, bounded by its own short timeout.
		if redisClient != nil {
			redisCtx, cancelRedis := context.WithTimeout(ctx, redisTimeout)
			raw, err := redisClient.Get(redisCtx, key).Result()
			cancelRedis()
			if err == nil && raw != "" {
				var typed T
				if err := json.Unmarshal([]byte(raw), &typed); err == nil {
					memCache.SetWithTTL(key, typed, memTTL)
					return typed, nil
				}
			}
		}

		// 3. Origin fetch.
		fetchCtx, cancelFetch := context.WithTimeout(ctx, apiTimeout)
		defer cancelFetch()
		typed, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		memCache.SetWithTTL(key, typed, memTTL)

		if syncToRedis && redisClient != nil {
			if data, err := json.Marshal(typed); err == nil {
				redisClient.Set(ctx, key, data, time.Duration(redisTTL)*time.Second)
			}
		}
		return typed, nil
	})
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return typed, nil
}

// GetWithMultiLevelCacheDefault applies the recommended layer timeouts:
// 50ms for Redis, 1s for the origin, no Redis write-back.
func GetWithMultiLevelCacheDefault[T any](
	ctx context.Context,
	key string,
	memCache Cache,
	redisClient *redis.Client,
	fetch func(ctx context.Context) (T, error),
	memTTL int,
	redisTTL int,
) (T, error) {
	return GetWithMultiLevelCache(
		ctx,
		key,
		memCache,
		redisClient,
		fetch,
		memTTL,
		redisTTL,
		50*time.Millisecond,
		1*time.Second,
		false,
	)
}
