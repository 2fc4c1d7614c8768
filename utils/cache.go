package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// Hot read endpoints (spot/post detail, review pages) are cached for an
	// hour and invalidated by prefix on writes.
	defaultCacheTTL = time.Hour

	cacheKeyPrefix = "cache:"

	cacheOpTimeout    = 2 * time.Second
	cacheSweepTimeout = 3 * time.Second
)

// CacheKeyf builds a namespaced cache key. Every cached entry shares the same
// prefix so InvalidateByPrefix sweeps never touch other redis keyspaces
// (auth state, registration counters).
func CacheKeyf(format string, args ...interface{}) string {
	return cacheKeyPrefix + fmt.Sprintf(format, args...)
}

// CacheGetBytes reads a cached value. A miss and a redis error look the same
// to the caller; both mean rebuild from the database.
func CacheGetBytes(key string) ([]byte, bool) {
	rc := GetRedis()
	if rc == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	b, err := rc.Get(ctx, key).Bytes()
	if err != nil {
		if Sugar != nil {
			Sugar.Debugf("cache miss key=%s err=%v", key, err)
		}
		return nil, false
	}
	return b, true
}

// CacheSetBytes stores a value, falling back to the default TTL when none is
// given. Failures are logged and swallowed; caching is best effort.
func CacheSetBytes(key string, b []byte, ttl time.Duration) {
	rc := GetRedis()
	if rc == nil {
		return
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := rc.Set(ctx, key, b, ttl).Err(); err != nil && Sugar != nil {
		Sugar.Warnf("cache set failed key=%s err=%v", key, err)
	}
}

// CacheSetJSON marshals v and stores the JSON bytes under key.
func CacheSetJSON(key string, v interface{}, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	CacheSetBytes(key, b, ttl)
}

// InvalidateByPrefix deletes every key under prefix with a bounded SCAN so a
// write never blocks on a full keyspace walk. A sweep cut short by the round
// cap leaves stale entries to expire via TTL.
func InvalidateByPrefix(prefix string) {
	rc := GetRedis()
	if rc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheSweepTimeout)
	defer cancel()

	const maxRounds = 10
	var cursor uint64
	for round := 0; round < maxRounds; round++ {
		keys, next, err := rc.Scan(ctx, cursor, prefix+"*", 1000).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			pipe := rc.Pipeline()
			for _, k := range keys {
				pipe.Del(ctx, k)
			}
			_, _ = pipe.Exec(ctx)
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
