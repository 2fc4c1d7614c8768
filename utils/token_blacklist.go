package utils

import (
	"context"
	"sync"
	"time"
)

const revokedTokenKeyPrefix = "auth:revoked:"

type revokedToken struct {
	expiresAt time.Time
}

var (
	revokedTokens   = map[string]revokedToken{}
	revokedTokensMu sync.RWMutex
)

// BlacklistToken revokes a JWT until its natural expiration so logout takes
// effect immediately. Redis carries the revocation when available; otherwise
// a process-local map covers single-instance deployments.
func BlacklistToken(token string, expiresAt time.Time) {
	if rc := GetRedis(); rc != nil {
		ttl := time.Until(expiresAt)
		if ttl <= 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = rc.Set(ctx, revokedTokenKeyPrefix+token, "1", ttl).Err()
		return
	}
	revokedTokensMu.Lock()
	revokedTokens[token] = revokedToken{expiresAt: expiresAt}
	revokedTokensMu.Unlock()
}

// IsTokenBlacklisted reports whether a token was revoked before it expired.
func IsTokenBlacklisted(token string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := rc.Exists(ctx, revokedTokenKeyPrefix+token).Result()
		if err == nil {
			return n > 0
		}
		// Fail open on redis errors so an outage cannot lock everyone out
		return false
	}

	revokedTokensMu.RLock()
	entry, ok := revokedTokens[token]
	revokedTokensMu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(entry.expiresAt) {
		revokedTokensMu.Lock()
		delete(revokedTokens, token)
		revokedTokensMu.Unlock()
		return false
	}

	return true
}
