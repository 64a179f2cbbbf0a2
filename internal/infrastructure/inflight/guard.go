package inflight

import (
	"context"
	"sync"
	"time"

	"github.com/copysmith/backend/internal/domain"
)

// DefaultTTL bounds how long a slot may be held before it is considered abandoned
const DefaultTTL = 5 * time.Minute

// sweepInterval is how often expired slots are removed
const sweepInterval = time.Minute

// Guard tracks which sessions have a submission in progress.
// A slot held past its TTL is treated as free.
type Guard struct {
	slots map[string]time.Time
	ttl   time.Duration
	mutex sync.Mutex
	stop  chan struct{}
	once  sync.Once
}

// NewGuard creates a guard and starts its background sweep
func NewGuard(ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	guard := &Guard{
		slots: make(map[string]time.Time),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}

	go guard.sweepExpired()

	return guard
}

// TryAcquire claims the slot for key, failing with ErrSubmissionInFlight if
// the key already holds an unexpired slot
func (g *Guard) TryAcquire(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	now := time.Now()
	if expiry, held := g.slots[key]; held && now.Before(expiry) {
		return domain.ErrSubmissionInFlight
	}

	g.slots[key] = now.Add(g.ttl)
	return nil
}

// Release frees the slot for key
func (g *Guard) Release(key string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	delete(g.slots, key)
}

// InFlight reports whether key currently holds an unexpired slot
func (g *Guard) InFlight(key string) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	expiry, held := g.slots[key]
	return held && time.Now().Before(expiry)
}

// Size returns the number of tracked slots, expired ones included until swept
func (g *Guard) Size() int {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return len(g.slots)
}

// Close stops the background sweep
func (g *Guard) Close() {
	g.once.Do(func() { close(g.stop) })
}

// sweepExpired removes expired slots periodically
func (g *Guard) sweepExpired() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.removeExpired(time.Now())
		}
	}
}

func (g *Guard) removeExpired(now time.Time) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for key, expiry := range g.slots {
		if !now.Before(expiry) {
			delete(g.slots, key)
		}
	}
}
