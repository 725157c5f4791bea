package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alfredjeanlab/clusterconfig/internal/model"
	"github.com/alfredjeanlab/clusterconfig/internal/store"
)

// stubStore implements store.Store with a fixed pricing catalog.
type stubStore struct {
	entries []*model.PricingEntry
	listErr error
}

func (s *stubStore) CreateConfiguration(context.Context, *model.Configuration) error {
	return errors.New("not implemented")
}

func (s *stubStore) GetConfiguration(context.Context, int64) (*model.Configuration, error) {
	return nil, errors.New("not implemented")
}

func (s *stubStore) ListConfigurations(context.Context) ([]*model.Configuration, error) {
	return nil, errors.New("not implemented")
}

func (s *stubStore) ListPricing(context.Context) ([]*model.PricingEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.entries, nil
}

func (s *stubStore) CountPricing(context.Context) (int, error) {
	return len(s.entries), nil
}

func (s *stubStore) SeedPricing(context.Context, []*model.PricingEntry) error {
	return errors.New("not implemented")
}

func (s *stubStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(s)
}

func (s *stubStore) Close() error { return nil }

func newLoadedCache(t *testing.T) *Cache {
	t.Helper()
	c := NewCache(&stubStore{entries: model.DefaultPricing()})
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestUnloadedCache(t *testing.T) {
	c := NewCache(&stubStore{})

	if c.Loaded() {
		t.Error("Loaded() = true before Load")
	}
	if _, _, err := c.Price(4); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Price error = %v, want ErrNotLoaded", err)
	}
	if _, err := c.AllPrices(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("AllPrices error = %v, want ErrNotLoaded", err)
	}
	if _, err := c.NodeCounts(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("NodeCounts error = %v, want ErrNotLoaded", err)
	}
	// IsValidNodeCount never errors; an unloaded cache answers false.
	if c.IsValidNodeCount(4) {
		t.Error("IsValidNodeCount(4) = true before Load")
	}
}

func TestLoadFailureLeavesCacheUnloaded(t *testing.T) {
	c := NewCache(&stubStore{listErr: errors.New("connection refused")})
	if err := c.Load(context.Background()); err == nil {
		t.Fatal("expected Load error")
	}
	if c.Loaded() {
		t.Error("cache loaded after failed Load")
	}
}

func TestPriceLookup(t *testing.T) {
	c := newLoadedCache(t)

	for _, tc := range []struct {
		nodes int
		want  string
	}{
		{4, "199.99"},
		{64, "2299.99"},
		{512, "14999.99"},
	} {
		price, ok, err := c.Price(tc.nodes)
		if err != nil {
			t.Fatalf("Price(%d): %v", tc.nodes, err)
		}
		if !ok {
			t.Fatalf("Price(%d): tier not found", tc.nodes)
		}
		if !price.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("Price(%d) = %s, want %s", tc.nodes, price, tc.want)
		}
	}

	// Unknown tier: ok=false, no error.
	_, ok, err := c.Price(100)
	if err != nil {
		t.Fatalf("Price(100): %v", err)
	}
	if ok {
		t.Error("Price(100) found a tier that does not exist")
	}
}

func TestNodeCountsSorted(t *testing.T) {
	c := newLoadedCache(t)

	counts, err := c.NodeCounts()
	if err != nil {
		t.Fatalf("NodeCounts: %v", err)
	}
	if len(counts) != 12 {
		t.Fatalf("len(counts) = %d, want 12", len(counts))
	}
	for i := 1; i < len(counts); i++ {
		if counts[i-1] >= counts[i] {
			t.Fatalf("counts not ascending: %v", counts)
		}
	}
	if counts[0] != 4 || counts[len(counts)-1] != 512 {
		t.Errorf("counts = %v, want 4..512", counts)
	}
}

func TestAllPricesReturnsCopy(t *testing.T) {
	c := newLoadedCache(t)

	first, err := c.AllPrices()
	if err != nil {
		t.Fatalf("AllPrices: %v", err)
	}

	// Mutating the returned map must not affect subsequent reads.
	first[4] = decimal.NewFromInt(1)
	delete(first, 512)

	second, err := c.AllPrices()
	if err != nil {
		t.Fatalf("AllPrices: %v", err)
	}
	if !second[4].Equal(decimal.RequireFromString("199.99")) {
		t.Errorf("price for 4 nodes changed to %s", second[4])
	}
	if _, ok := second[512]; !ok {
		t.Error("tier 512 missing after caller mutation")
	}
}

func TestIsValidNodeCount(t *testing.T) {
	c := newLoadedCache(t)

	if !c.IsValidNodeCount(128) {
		t.Error("IsValidNodeCount(128) = false")
	}
	if c.IsValidNodeCount(100) {
		t.Error("IsValidNodeCount(100) = true")
	}
	if c.IsValidNodeCount(0) {
		t.Error("IsValidNodeCount(0) = true")
	}
	if c.IsValidNodeCount(-4) {
		t.Error("IsValidNodeCount(-4) = true")
	}
}
