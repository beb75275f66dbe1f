package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotHeld = errors.New("lock was not held by this client")

// Only the holder may release or extend a lock.
var (
	unlockScript = redis.NewScript(`
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		end
		return 0
	`)
	refreshScript = redis.NewScript(`
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("PEXPIRE", KEYS[1], ARGV[2])
		end
		return 0
	`)
)

// ScheduledTaskLock is a long-lived lock held by the single instance allowed to run a scheduler.
// The holder keeps it alive with AutoRefresh; other instances wait in Acquire until it expires.
type ScheduledTaskLock struct {
	client          *Client
	key             string
	value           string
	ttl             time.Duration
	refreshInterval time.Duration
}

func NewScheduledTaskLock(client *Client, key string, ttl time.Duration, refreshInterval time.Duration, namespace string) *ScheduledTaskLock {
	return &ScheduledTaskLock{
		client:          client,
		key:             buildLockKey(namespace, key),
		value:           uuid.New().String(),
		ttl:             ttl,
		refreshInterval: refreshInterval,
	}
}

// buildLockKey constructs the full lock key using namespace::key format
func buildLockKey(namespace string, key string) string {
	if namespace != "" {
		return namespace + "::" + key
	}
	return key
}

func (l *ScheduledTaskLock) Key() string {
	return l.key
}

// TryLock makes a single attempt and reports whether the lock was taken.
func (l *ScheduledTaskLock) TryLock(ctx context.Context) (bool, error) {
	acquired, err := l.client.GetClient().SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	return acquired, nil
}

// Acquire blocks until the lock is taken or ctx is done, retrying every refresh interval.
func (l *ScheduledTaskLock) Acquire(ctx context.Context) error {
	ticker := time.NewTicker(l.refreshInterval)
	defer ticker.Stop()

	for {
		acquired, err := l.TryLock(ctx)
		if err != nil {
			return err
		}
		if acquired {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *ScheduledTaskLock) Unlock(ctx context.Context) error {
	result, err := unlockScript.Run(ctx, l.client.GetClient(), []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL
func (l *ScheduledTaskLock) Refresh(ctx context.Context) error {
	result, err := refreshScript.Run(ctx, l.client.GetClient(), []string{l.key}, l.value, l.ttl.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh lock %s: %w", l.key, err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// AutoRefresh refreshes the lock until ctx is done or a refresh fails.
// The returned channel receives exactly one value: nil on cancellation, the refresh error otherwise.
func (l *ScheduledTaskLock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.refreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}
