package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var ErrLockNotAcquired = errors.New("settlement lock not acquired")

// Deletes the key only when it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// SettlementLock serialises balance check and payment write per card across
// server instances. The key expires after ttl if the holder dies; the lease
// handed to the holder ends a fifth of the ttl earlier.
type SettlementLock struct {
	client  *redis.Client
	ttl     time.Duration
	lease   time.Duration
	retry   time.Duration
	maxWait time.Duration
	log     zerolog.Logger
}

func NewSettlementLock(client *redis.Client, ttl time.Duration, log zerolog.Logger) *SettlementLock {
	return &SettlementLock{
		client:  client,
		ttl:     ttl,
		lease:   ttl - ttl/5,
		retry:   20 * time.Millisecond,
		maxWait: 2 * ttl,
		log:     log.With().Str("component", "settlement_lock").Logger(),
	}
}

// Lock blocks until the card's lock is held, ctx is done or maxWait elapses.
// The returned lease is cancelled on unlock or when the key may have expired.
func (l *SettlementLock) Lock(ctx context.Context, cardID uint) (context.Context, func(), error) {
	key := GenerateKey("settlement", "card", cardID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.maxWait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to acquire settlement lock: %w", err)
		}
		if ok {
			lease, cancel := context.WithTimeout(ctx, l.lease)
			return lease, func() {
				cancel()
				l.release(key, token)
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, nil, fmt.Errorf("card %d: %w", cardID, ErrLockNotAcquired)
		}

		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}

func (l *SettlementLock) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := unlockScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("failed to release settlement lock")
	}
}
