package utils

import (
	"context"
	"sync"
	"time"
)

const oauthStateKeyPrefix = "auth:oauth:state:"

type oauthState struct {
	expiresAt time.Time
}

var (
	oauthStates   = map[string]oauthState{}
	oauthStatesMu sync.Mutex
)

// SaveState stores a single-use OAuth state token with a TTL to mitigate
// login CSRF. Redis keeps the state consistent across instances; the
// in-memory map is the single-instance fallback.
func SaveState(state string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = rc.Set(ctx, oauthStateKeyPrefix+state, "1", ttl).Err()
		return
	}
	oauthStatesMu.Lock()
	oauthStates[state] = oauthState{expiresAt: time.Now().Add(ttl)}
	oauthStatesMu.Unlock()
}

// ConsumeState validates a state token and removes it in the same step so a
// replayed callback cannot reuse it.
func ConsumeState(state string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		key := oauthStateKeyPrefix + state
		if v, err := rc.GetDel(ctx, key).Result(); err == nil {
			return v != ""
		}
		// GETDEL needs redis 6.2; fall back to an atomic get+del script
		script := `local v=redis.call('GET', KEYS[1]); if v then redis.call('DEL', KEYS[1]); end; return v`
		if res, err := rc.Eval(ctx, script, []string{key}).Result(); err == nil {
			return res != nil
		}
		return false
	}

	oauthStatesMu.Lock()
	entry, ok := oauthStates[state]
	if ok {
		delete(oauthStates, state)
	}
	oauthStatesMu.Unlock()
	if !ok {
		return false
	}
	return time.Now().Before(entry.expiresAt)
}
