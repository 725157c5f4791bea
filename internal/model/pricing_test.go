package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultPricing(t *testing.T) {
	entries := DefaultPricing()
	if len(entries) != 12 {
		t.Fatalf("len = %d, want 12", len(entries))
	}

	want := map[int]string{
		4: "199.99", 8: "349.99", 16: "649.99", 32: "1199.99",
		64: "2299.99", 128: "4399.99", 192: "6299.99", 256: "8199.99",
		320: "9999.99", 384: "11699.99", 448: "13299.99", 512: "14999.99",
	}
	for _, e := range entries {
		wantPrice, ok := want[e.NodesCount]
		if !ok {
			t.Errorf("unexpected tier %d", e.NodesCount)
			continue
		}
		if !e.PriceUSD.Equal(decimal.RequireFromString(wantPrice)) {
			t.Errorf("tier %d price = %s, want %s", e.NodesCount, e.PriceUSD, wantPrice)
		}
	}

	// Tiers are sorted ascending.
	for i := 1; i < len(entries); i++ {
		if entries[i-1].NodesCount >= entries[i].NodesCount {
			t.Fatalf("tiers not ascending at index %d", i)
		}
	}
}

func TestDefaultPricingFresh(t *testing.T) {
	// Each call returns fresh entries; callers may mutate them.
	a := DefaultPricing()
	a[0].PriceUSD = decimal.NewFromInt(1)
	b := DefaultPricing()
	if !b[0].PriceUSD.Equal(decimal.RequireFromString("199.99")) {
		t.Errorf("mutation leaked into a later call: %s", b[0].PriceUSD)
	}
}
