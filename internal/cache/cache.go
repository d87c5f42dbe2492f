// Package cache provides the process-wide, TTL-bounded response cache shared
// by all widgets and clients. It is a performance layer only; a miss always
// falls through to the upstream.
package cache

import (
	"container/list"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"scorepulse/internal/domain"
	"scorepulse/internal/metrics"
)

// Key identifies a cached response by endpoint family and normalized inputs.
type Key struct {
	Family domain.Family
	Sport  string
	Team   string
}

// NewKey lowercases sport and team so equivalent lookups share an entry.
func NewKey(family domain.Family, sport, team string) Key {
	return Key{
		Family: family,
		Sport:  strings.ToLower(strings.TrimSpace(sport)),
		Team:   strings.ToLower(strings.TrimSpace(team)),
	}
}

type entry struct {
	key        Key
	value      any
	insertedAt time.Time
	ttl        time.Duration
}

// Stats is a point-in-time view of cache occupancy. Evictions counts live
// entries displaced by capacity pressure; Expiries counts entries reclaimed
// after their TTL lapsed.
type Stats struct {
	Size      int
	Capacity  int
	Evictions uint64
	Expiries  uint64
}

// Cache is a fixed-capacity TTL cache. Population uses check-and-set
// semantics: the first writer for a key wins while the entry is fresh.
// When full, insertion evicts the oldest expired entry, or the oldest entry
// outright when none has expired.
type Cache struct {
	mu        sync.RWMutex
	clock     clockwork.Clock
	metrics   *metrics.Recorder
	capacity  int
	entries   map[Key]*list.Element
	order     *list.List // front = most recently inserted
	evictions uint64
	expiries  uint64
}

// New constructs a Cache holding at most capacity entries.
func New(capacity int) *Cache {
	return NewWithRecorder(capacity, nil)
}

// NewWithRecorder constructs a Cache that reports evictions and expiries to
// rec. rec may be nil.
func NewWithRecorder(capacity int, rec *metrics.Recorder) *Cache {
	return newCache(capacity, clockwork.NewRealClock(), rec)
}

// NewWithClock constructs a Cache with an injected clock.
func NewWithClock(capacity int, clock clockwork.Clock) *Cache {
	return newCache(capacity, clock, nil)
}

func newCache(capacity int, clock clockwork.Clock, rec *metrics.Recorder) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		clock:    clock,
		metrics:  rec,
		capacity: capacity,
		entries:  make(map[Key]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached value for key if present and not expired.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.expired(ent, c.clock.Now()) {
		return nil, false
	}
	return ent.value, true
}

// Put stores value under key unless a fresh entry already exists. It reports
// whether the value was stored.
func (c *Cache) Put(key Key, value any, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry)
		if !c.expired(ent, now) {
			// First writer won; keep the fresh value.
			return false
		}
		c.expiries++
		c.metrics.RecordCacheEviction(true)
		ent.value = value
		ent.insertedAt = now
		ent.ttl = ttl
		c.order.MoveToFront(elem)
		return true
	}

	if c.order.Len() >= c.capacity {
		c.evictOne(now)
	}
	elem := c.order.PushFront(&entry{key: key, value: value, insertedAt: now, ttl: ttl})
	c.entries[key] = elem
	return true
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}

// Snapshot returns occupancy stats.
func (c *Cache) Snapshot() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Size:      c.order.Len(),
		Capacity:  c.capacity,
		Evictions: c.evictions,
		Expiries:  c.expiries,
	}
}

func (c *Cache) expired(ent *entry, now time.Time) bool {
	return now.Sub(ent.insertedAt) >= ent.ttl
}

// evictOne removes the oldest expired entry, falling back to the oldest entry
// when nothing has expired. Caller holds the write lock.
func (c *Cache) evictOne(now time.Time) {
	victim := c.order.Back()
	expired := false
	for elem := c.order.Back(); elem != nil; elem = elem.Prev() {
		if c.expired(elem.Value.(*entry), now) {
			victim = elem
			expired = true
			break
		}
	}
	if victim == nil {
		return
	}
	delete(c.entries, victim.Value.(*entry).key)
	c.order.Remove(victim)
	if expired {
		c.expiries++
	} else {
		c.evictions++
	}
	c.metrics.RecordCacheEviction(expired)
}
