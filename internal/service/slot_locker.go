package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors
// =============================================================================

// ErrLockNotAcquired is returned when a slot lock could not be taken before the
// context expired.
var ErrLockNotAcquired = errors.New("slot lock not acquired")

// releaseLockScript deletes the lock key only while it still holds our token,
// so an expired lock re-acquired by another instance is never released by us.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// =============================================================================
// Constants
// =============================================================================

const (
	RedisSlotLockKeyPrefix = "booking:slot-lock:"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second

	// Delay between SET NX attempts while the lock is held elsewhere
	lockRetryInterval = 25 * time.Millisecond

	// Interval for cleaning up idle gates
	gateCleanupInterval = 10 * time.Minute

	// How long a gate must be unused before cleanup
	gateStaleThreshold = 10 * time.Minute
)

// SlotLocker serializes reservations and deletions on a single slot.
// Different slots never block each other.
type SlotLocker interface {
	// Lock blocks until the slot is held or ctx ends. The returned unlock
	// must be called exactly once.
	Lock(ctx context.Context, slotID uuid.UUID) (unlock func(), err error)
	Stop()
}

// =============================================================================
// In-process gate
// =============================================================================

// MemorySlotLocker keeps one gate per slot in memory. It is enough for a
// single instance; the row lock taken inside the reserve transaction still
// guards the database when several instances run.
type MemorySlotLocker struct {
	log *logrus.Logger

	gates sync.Map // map[uuid.UUID]*slotGate

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// slotGate is a one-token semaphore so waiters can give up on ctx
type slotGate struct {
	sem      chan struct{}
	lastUsed atomic.Int64 // Unix timestamp
}

// NewMemorySlotLocker starts the background janitor for idle gates.
// Call Stop() during graceful shutdown.
func NewMemorySlotLocker(log *logrus.Logger) *MemorySlotLocker {
	l := &MemorySlotLocker{
		log:      log,
		stopChan: make(chan struct{}),
	}

	l.wg.Add(1)
	go l.cleanupLoop()

	return l
}

func (l *MemorySlotLocker) Lock(ctx context.Context, slotID uuid.UUID) (func(), error) {
	for {
		g := l.gate(slotID)

		select {
		case g.sem <- struct{}{}:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: slot %s: %v", ErrLockNotAcquired, slotID, ctx.Err())
		}

		// The janitor may have retired this gate while we waited on it
		if current, ok := l.gates.Load(slotID); ok && current == g {
			var once sync.Once
			return func() {
				once.Do(func() {
					g.lastUsed.Store(time.Now().Unix())
					<-g.sem
				})
			}, nil
		}
		<-g.sem
	}
}

// Stop gracefully shuts down the janitor.
// Safe to call multiple times.
func (l *MemorySlotLocker) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.stopChan)
		l.wg.Wait()
		l.log.Info("MemorySlotLocker stopped")
	}
}

func (l *MemorySlotLocker) gate(slotID uuid.UUID) *slotGate {
	fresh := &slotGate{sem: make(chan struct{}, 1)}
	g, _ := l.gates.LoadOrStore(slotID, fresh)
	result := g.(*slotGate)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

func (l *MemorySlotLocker) cleanupLoop() {
	defer l.wg.Done()

	ticker := time.NewTicker(gateCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			l.log.Debug("Slot gate cleanup goroutine stopping")
			return
		case <-ticker.C:
			l.cleanupStaleGates(time.Now().Add(-gateStaleThreshold))
		}
	}
}

// cleanupStaleGates removes gates idle since before cutoff. A gate is only
// removed while we hold its token, so no caller can be inside it.
func (l *MemorySlotLocker) cleanupStaleGates(cutoff time.Time) int {
	var cleaned int

	l.gates.Range(func(key, value any) bool {
		g, ok := value.(*slotGate)
		if !ok {
			return true
		}

		select {
		case g.sem <- struct{}{}:
			if g.lastUsed.Load() < cutoff.Unix() {
				l.gates.Delete(key)
				cleaned++
			}
			<-g.sem
		default:
		}
		return true
	})

	if cleaned > 0 {
		l.log.Debugf("Cleaned up %d idle slot gates", cleaned)
	}
	return cleaned
}

// =============================================================================
// Redis lock
// =============================================================================

// RedisSlotLocker holds the slot lock in Redis so that reservations are
// serialized across instances. The key expires after ttl in case the holder dies.
type RedisSlotLocker struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisSlotLocker(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) *RedisSlotLocker {
	return &RedisSlotLocker{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (l *RedisSlotLocker) Lock(ctx context.Context, slotID uuid.UUID) (func(), error) {
	key := RedisSlotLockKeyPrefix + slotID.String()
	token := uuid.NewString()

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.redisClient.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: slot %s: %v", ErrLockNotAcquired, slotID, ctx.Err())
			}
			l.log.Warnf("Failed to acquire redis lock for slot %s: %+v", slotID, err)
			return nil, fmt.Errorf("redis lock for slot %s: %w", slotID, err)
		}
		if ok {
			l.log.Debugf("Acquired redis lock for slot %s", slotID)
			return l.releaser(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: slot %s: %v", ErrLockNotAcquired, slotID, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *RedisSlotLocker) releaser(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be done
			ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
			defer cancel()

			if err := releaseLockScript.Run(ctx, l.redisClient, []string{key}, token).Err(); err != nil {
				l.log.Warnf("Failed to release redis lock %s: %+v", key, err)
			}
		})
	}
}

// Stop is a no-op; held keys expire on their own.
func (l *RedisSlotLocker) Stop() {}
