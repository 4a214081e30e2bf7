package cache

import (
	"container/list"
	"fmt"
	"math/rand/v2"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/ports"
	"strings"
	"sync"
)

// EvictionPolicy selects the victim when a full cache admits a new key.
type EvictionPolicy string

const (
	EvictLRU    EvictionPolicy = "lru"
	EvictFIFO   EvictionPolicy = "fifo"
	EvictRandom EvictionPolicy = "random"
)

// ParseEvictionPolicy accepts the policy names case-insensitively; empty means LRU.
func ParseEvictionPolicy(s string) (EvictionPolicy, error) {
	switch p := EvictionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return EvictLRU, nil
	case EvictLRU, EvictFIFO, EvictRandom:
		return p, nil
	default:
		return "", fmt.Errorf("eviction policy %q: %w", s, domain.ErrInvalidArgument)
	}
}

type entry struct {
	key   domain.RouteKey
	value domain.RouteEstimate
}

// In-process bounded route cache.
// Entries are kept in a list ordered from oldest (front) to newest (back);
// under LRU a hit moves the entry to the back, under FIFO order is insertion only.
type MemoryRouteCache struct {
	mu       sync.Mutex
	capacity int
	policy   EvictionPolicy
	rng      *rand.Rand

	order *list.List
	items map[domain.RouteKey]*list.Element

	hits, misses, evictions int64
}

var _ ports.RouteCache = (*MemoryRouteCache)(nil)

type Option func(*MemoryRouteCache)

// WithPolicy sets the eviction policy. Default is LRU.
func WithPolicy(p EvictionPolicy) Option {
	return func(c *MemoryRouteCache) { c.policy = p }
}

// WithRand sets the source used by the random policy.
func WithRand(r *rand.Rand) Option {
	return func(c *MemoryRouteCache) { c.rng = r }
}

func NewMemoryRouteCache(capacity int, opts ...Option) (*MemoryRouteCache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("route cache: capacity %d must be positive: %w", capacity, domain.ErrInvalidArgument)
	}

	c := &MemoryRouteCache{
		capacity: capacity,
		policy:   EvictLRU,
		order:    list.New(),
		items:    make(map[domain.RouteKey]*list.Element, capacity),
	}
	for _, o := range opts {
		o(c)
	}

	switch c.policy {
	case EvictLRU, EvictFIFO, EvictRandom:
	default:
		return nil, fmt.Errorf("route cache: unknown policy %q: %w", c.policy, domain.ErrInvalidArgument)
	}
	if c.policy == EvictRandom && c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return c, nil
}

func (c *MemoryRouteCache) Get(key domain.RouteKey) (domain.RouteEstimate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return domain.RouteEstimate{}, false
	}

	c.hits++
	if c.policy == EvictLRU {
		c.order.MoveToBack(el)
	}
	return el.Value.(*entry).value.Clone(), true
}

func (c *MemoryRouteCache) Put(key domain.RouteKey, value domain.RouteEstimate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value.Clone()
		if c.policy == EvictLRU {
			c.order.MoveToBack(el)
		}
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOne()
	}

	c.items[key] = c.order.PushBack(&entry{key: key, value: value.Clone()})
}

// evictOne removes a single entry chosen by the policy. Caller holds mu.
func (c *MemoryRouteCache) evictOne() {
	victim := c.order.Front()
	if c.policy == EvictRandom {
		n := c.rng.IntN(c.order.Len())
		for range n {
			victim = victim.Next()
		}
	}
	if victim == nil {
		return
	}

	c.order.Remove(victim)
	delete(c.items, victim.Value.(*entry).key)
	c.evictions++
}

func (c *MemoryRouteCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	clear(c.items)
}

func (c *MemoryRouteCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *MemoryRouteCache) Capacity() int { return c.capacity }

func (c *MemoryRouteCache) Stats() ports.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ports.CacheStats{
		Entries:   c.order.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Policy:    string(c.policy),
	}
}
