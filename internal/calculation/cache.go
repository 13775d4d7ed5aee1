package calculation

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rgehrsitz/herdsim/internal/domain"
)

// DefaultCacheSize bounds the number of memoized projections
const DefaultCacheSize = 128

// CacheStats reports memo cache effectiveness
type CacheStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// CachedEngine memoizes projections by their parameters. Results are shared between
// callers and must be treated as read-only. It is safe for concurrent use.
type CachedEngine struct {
	engine   *Engine
	cache    *lru.Cache[domain.SimulationParameters, *domain.ProjectionResult]
	hits     atomic.Uint64
	misses   atomic.Uint64
	onLookup func(hit bool)
}

// NewCachedEngine wraps engine with an LRU cache holding up to size results
func NewCachedEngine(engine *Engine, size int) (*CachedEngine, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[domain.SimulationParameters, *domain.ProjectionResult](size)
	if err != nil {
		return nil, fmt.Errorf("create projection cache: %w", err)
	}
	return &CachedEngine{engine: engine, cache: cache}, nil
}

// OnLookup registers a hook called after every lookup; the server feeds metrics from it
func (c *CachedEngine) OnLookup(fn func(hit bool)) {
	c.onLookup = fn
}

// Engine returns the wrapped engine
func (c *CachedEngine) Engine() *Engine {
	return c.engine
}

// Project returns the memoized result for params, computing it on a miss.
// Invalid parameters are never cached.
func (c *CachedEngine) Project(params domain.SimulationParameters) (*domain.ProjectionResult, error) {
	if result, ok := c.cache.Get(params); ok {
		c.hits.Add(1)
		c.notify(true)
		return result, nil
	}
	c.misses.Add(1)
	c.notify(false)

	result, err := c.engine.Project(params)
	if err != nil {
		return nil, err
	}
	c.cache.Add(params, result)
	return result, nil
}

func (c *CachedEngine) notify(hit bool) {
	if c.onLookup != nil {
		c.onLookup(hit)
	}
}

// Stats returns hit and miss counters and the current cache size
func (c *CachedEngine) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.cache.Len(),
	}
}

// Purge drops every memoized result
func (c *CachedEngine) Purge() {
	c.cache.Purge()
}
