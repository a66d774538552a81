package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 5 * time.Second
	lockRetryWait = 20 * time.Millisecond
)

// OwnerLock serializes task creation per owner across service instances.
// Key format: lock:owner:<owner_id>. The TTL bounds how long a crashed
// holder can block other creators.
type OwnerLock struct {
	client *redis.Client
}

// NewOwnerLock creates an OwnerLock wrapping the given Redis client.
func NewOwnerLock(client *redis.Client) *OwnerLock {
	return &OwnerLock{client: client}
}

// Acquire blocks until the owner lock is held or ctx is done. The returned
// release function deletes the key; calling it after the TTL has elapsed is
// harmless.
func (l *OwnerLock) Acquire(ctx context.Context, ownerID string) (func(), error) {
	key := l.key(ownerID)
	for {
		ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire owner lock: %w", err)
		}
		if ok {
			return func() {
				// Best effort: the TTL reclaims the lock if this fails.
				_ = l.client.Del(context.Background(), key).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}
}

func (l *OwnerLock) key(ownerID string) string {
	return "lock:owner:" + ownerID
}
