package page

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "page:lock:"

// Tracker hands out page locks. Acquire returns the holder's token; only
// that token can release the lock, so a holder whose lease already expired
// cannot free a lock someone else took afterwards.
type Tracker interface {
	// Acquire reports false when the key is already held.
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

// LockKey is the storage key used for a page lock.
func LockKey(key string) string {
	return lockKeyPrefix + key
}

// hapus hanya kalau lock masih milik token ini
const releaseLua = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

var releaseScript = redis.NewScript(releaseLua)

type redisTracker struct {
	rdb      *redis.Client
	ttl      time.Duration
	newToken func() string
}

// NewRedisTracker shares page locks across front-end instances. The TTL
// frees a lock left behind by a crashed request.
func NewRedisTracker(rdb *redis.Client, ttl time.Duration) Tracker {
	return &redisTracker{rdb: rdb, ttl: ttl, newToken: uuid.NewString}
}

func (t *redisTracker) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := t.newToken()
	ok, err := t.rdb.SetNX(ctx, LockKey(key), token, t.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (t *redisTracker) Release(ctx context.Context, key, token string) error {
	return releaseScript.Eval(ctx, t.rdb, []string{LockKey(key)}, token).Err()
}

type lease struct {
	token   string
	expires time.Time
}

type memoryTracker struct {
	mu       sync.Mutex
	held     map[string]lease
	ttl      time.Duration
	clock    func() time.Time
	newToken func() string
}

func NewMemoryTracker(ttl time.Duration) Tracker {
	return &memoryTracker{
		held:     make(map[string]lease),
		ttl:      ttl,
		clock:    time.Now,
		newToken: uuid.NewString,
	}
}

func (t *memoryTracker) Acquire(_ context.Context, key string) (string, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	if l, ok := t.held[key]; ok && now.Before(l.expires) {
		return "", false, nil
	}
	token := t.newToken()
	t.held[key] = lease{token: token, expires: now.Add(t.ttl)}
	return token, true, nil
}

func (t *memoryTracker) Release(_ context.Context, key, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.held[key]; ok && l.token == token {
		delete(t.held, key)
	}
	return nil
}
