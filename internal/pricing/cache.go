// Package pricing serves node-tier price lookups from an in-memory cache
// populated once at process startup. The catalog is effectively static per
// deployment and lookups sit on the request hot path, so the store round-trip
// is paid once in Load and every query afterwards is a memory read. Changing
// a price requires a restart.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/alfredjeanlab/clusterconfig/internal/store"
)

// ErrNotLoaded is returned by query operations before Load has completed.
var ErrNotLoaded = errors.New("pricing: cache not loaded")

// Cache is a read-only in-memory view of the node pricing catalog. It is
// constructed empty, populated exactly once by Load, and immutable afterwards,
// so queries are safe under unbounded read concurrency.
type Cache struct {
	store store.Store

	mu     sync.RWMutex
	prices map[int]decimal.Decimal
	loaded bool
}

// NewCache returns an unloaded cache backed by the given store.
func NewCache(s store.Store) *Cache {
	return &Cache{store: s}
}

// Load reads the full pricing catalog from the store and swaps it into the
// cache. On store failure the cache stays unloaded and the error propagates;
// startup should treat that as fatal rather than serve with an empty cache.
func (c *Cache) Load(ctx context.Context) error {
	entries, err := c.store.ListPricing(ctx)
	if err != nil {
		return fmt.Errorf("load pricing: %w", err)
	}

	prices := make(map[int]decimal.Decimal, len(entries))
	for _, e := range entries {
		prices[e.NodesCount] = e.PriceUSD
	}

	c.mu.Lock()
	c.prices = prices
	c.loaded = true
	c.mu.Unlock()

	slog.Info("pricing cache loaded", "tiers", len(prices))
	return nil
}

// Loaded reports whether Load has completed. Used by readiness checks.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Price returns the price for the given node count. The second return value
// is false when the tier is unknown; that is not an error. ErrNotLoaded is
// returned when Load has not completed.
func (c *Cache) Price(nodesCount int) (decimal.Decimal, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return decimal.Decimal{}, false, ErrNotLoaded
	}
	p, ok := c.prices[nodesCount]
	return p, ok, nil
}

// AllPrices returns a copy of the full catalog keyed by node count. Callers
// may not assume any iteration order.
func (c *Cache) AllPrices() (map[int]decimal.Decimal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, ErrNotLoaded
	}
	out := make(map[int]decimal.Decimal, len(c.prices))
	for n, p := range c.prices {
		out[n] = p
	}
	return out, nil
}

// NodeCounts returns all known tiers sorted ascending.
func (c *Cache) NodeCounts() ([]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, ErrNotLoaded
	}
	counts := make([]int, 0, len(c.prices))
	for n := range c.prices {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	return counts, nil
}

// IsValidNodeCount reports whether the given node count is a known tier.
// Unlike the other queries it never fails: an unloaded cache answers false.
func (c *Cache) IsValidNodeCount(nodesCount int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return false
	}
	_, ok := c.prices[nodesCount]
	return ok
}
