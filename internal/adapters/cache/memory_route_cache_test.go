package cache

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"route-recommendation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(o string) domain.RouteKey { return domain.NewRouteKey(o, "dest", "Car") }

func estimate(o string) domain.RouteEstimate {
	return domain.RouteEstimate{Origin: o, Destination: "dest", DistanceKm: 1, Narrative: []string{"Start at " + o}}
}

func TestNewMemoryRouteCache_RejectsBadConfig(t *testing.T) {
	_, err := NewMemoryRouteCache(0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = NewMemoryRouteCache(-3)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = NewMemoryRouteCache(2, WithPolicy("mru"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseEvictionPolicy(t *testing.T) {
	p, err := ParseEvictionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, EvictLRU, p)

	p, err = ParseEvictionPolicy(" FIFO ")
	require.NoError(t, err)
	assert.Equal(t, EvictFIFO, p)

	_, err = ParseEvictionPolicy("lfu")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMemoryRouteCache_CapacityOne(t *testing.T) {
	c, err := NewMemoryRouteCache(1)
	require.NoError(t, err)

	c.Put(key("a"), estimate("a"))
	c.Put(key("b"), estimate("b"))

	assert.Equal(t, 1, c.Size())
	_, ok := c.Get(key("a"))
	assert.False(t, ok)
	got, ok := c.Get(key("b"))
	require.True(t, ok)
	assert.Equal(t, "b", got.Origin)
}

func TestMemoryRouteCache_LRU(t *testing.T) {
	c, err := NewMemoryRouteCache(2)
	require.NoError(t, err)

	c.Put(key("a"), estimate("a"))
	c.Put(key("b"), estimate("b"))
	_, _ = c.Get(key("a")) // a is now most recent
	c.Put(key("c"), estimate("c"))

	_, ok := c.Get(key("b"))
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get(key("a"))
	assert.True(t, ok)
	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestMemoryRouteCache_FIFO(t *testing.T) {
	c, err := NewMemoryRouteCache(2, WithPolicy(EvictFIFO))
	require.NoError(t, err)

	c.Put(key("a"), estimate("a"))
	c.Put(key("b"), estimate("b"))
	_, _ = c.Get(key("a"))
	c.Put(key("c"), estimate("c"))

	_, ok := c.Get(key("a"))
	assert.False(t, ok, "a was inserted first and should be gone")
	_, ok = c.Get(key("b"))
	assert.True(t, ok)
}

func TestMemoryRouteCache_Random(t *testing.T) {
	c, err := NewMemoryRouteCache(3, WithPolicy(EvictRandom), WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	for i := range 20 {
		c.Put(key(fmt.Sprint(i)), estimate(fmt.Sprint(i)))
		assert.LessOrEqual(t, c.Size(), 3)
	}

	_, ok := c.Get(key("19"))
	assert.True(t, ok, "the newest entry is never the victim")
	assert.Equal(t, int64(17), c.Stats().Evictions)
	assert.Equal(t, "random", c.Stats().Policy)
}

func TestMemoryRouteCache_OverwriteDoesNotEvict(t *testing.T) {
	c, err := NewMemoryRouteCache(2)
	require.NoError(t, err)

	c.Put(key("a"), estimate("a"))
	c.Put(key("b"), estimate("b"))
	updated := estimate("a")
	updated.DistanceKm = 9
	c.Put(key("a"), updated)

	assert.Equal(t, 2, c.Size())
	got, ok := c.Get(key("a"))
	require.True(t, ok)
	assert.Equal(t, 9.0, got.DistanceKm)
	assert.Zero(t, c.Stats().Evictions)
}

func TestMemoryRouteCache_KeyIsCaseInsensitive(t *testing.T) {
	c, err := NewMemoryRouteCache(2)
	require.NoError(t, err)

	c.Put(domain.NewRouteKey("Centro", "Sé", "Car"), estimate("Centro"))
	_, ok := c.Get(domain.NewRouteKey("centro", "SÉ", "car"))
	assert.True(t, ok)

	_, ok = c.Get(domain.NewRouteKey("Sé", "Centro", "Car"))
	assert.False(t, ok, "keys are order-sensitive")
}

func TestMemoryRouteCache_ValuesAreCopied(t *testing.T) {
	c, err := NewMemoryRouteCache(2)
	require.NoError(t, err)

	in := estimate("a")
	c.Put(key("a"), in)
	in.Narrative[0] = "mutated"

	got, _ := c.Get(key("a"))
	assert.Equal(t, "Start at a", got.Narrative[0])

	got.Narrative = append(got.Narrative, "extra")
	again, _ := c.Get(key("a"))
	assert.Len(t, again.Narrative, 1)
}

func TestMemoryRouteCache_Clear(t *testing.T) {
	c, err := NewMemoryRouteCache(4)
	require.NoError(t, err)

	c.Put(key("a"), estimate("a"))
	c.Put(key("b"), estimate("b"))
	c.Clear()

	assert.Zero(t, c.Size())
	_, ok := c.Get(key("a"))
	assert.False(t, ok)
	assert.Equal(t, 4, c.Capacity())
}

func TestMemoryRouteCache_Concurrent(t *testing.T) {
	c, err := NewMemoryRouteCache(5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := key(fmt.Sprintf("%d-%d", g, i%7))
				c.Put(k, estimate(k.Origin))
				c.Get(k)
				if c.Size() > c.Capacity() {
					t.Errorf("size %d exceeds capacity", c.Size())
					return
				}
			}
		}()
	}
	wg.Wait()

	s := c.Stats()
	assert.LessOrEqual(t, s.Entries, 5)
	assert.Equal(t, int64(8*200), s.Hits+s.Misses)
}
