package cache

import (
	"context"
	"time"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// delete only when we still hold the lock
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// RedisCartLock serializes cart mutations per user identity with a SetNX
// lease. The TTL bounds how long a crashed holder can block the cart.
type RedisCartLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartLock(rdb *redis.Client, ttl time.Duration) *RedisCartLock {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisCartLock{rdb: rdb, ttl: ttl}
}

func (l *RedisCartLock) Lock(ctx context.Context, userID string) (func(), error) {
	key := "cart:lock:" + userID
	token := uuid.NewString()

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}

	release := func() {
		// request context may already be gone when the handler returns
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, _ = unlockScript.Run(ctx, l.rdb, []string{key}, token).Result()
	}
	return release, nil
}

var _ usecase.CartLocker = (*RedisCartLock)(nil)
