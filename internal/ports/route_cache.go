package ports

import "route-recommendation-service/internal/domain"

// Counters reported by a RouteCache.
type CacheStats struct {
	Entries   int    `json:"entries"`
	Capacity  int    `json:"capacity"`
	Hits      int64  `json:"hits"`
	Misses    int64  `json:"misses"`
	Evictions int64  `json:"evictions"`
	Policy    string `json:"policy"`
}

// Bounded key -> route store. Implementations must be safe for concurrent use
// and never hold more than Capacity entries.
type RouteCache interface {
	Get(key domain.RouteKey) (domain.RouteEstimate, bool)
	// Put stores value, evicting exactly one entry first when the cache is full
	// and key is not already present.
	Put(key domain.RouteKey, value domain.RouteEstimate)
	Clear()
	Size() int
	Capacity() int
	Stats() CacheStats
}
