package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingEntry is one row of the node pricing catalog: the price for a
// cluster of NodesCount nodes. NodesCount is the primary identity.
type PricingEntry struct {
	NodesCount int             `json:"nodes_count"`
	PriceUSD   decimal.Decimal `json:"price_usd"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

// DefaultPricing returns the fixed node-tier catalog used to seed an empty
// pricing table. Prices are static lookup values, not computed.
func DefaultPricing() []*PricingEntry {
	tiers := []struct {
		nodes int
		price string
	}{
		{4, "199.99"},
		{8, "349.99"},
		{16, "649.99"},
		{32, "1199.99"},
		{64, "2299.99"},
		{128, "4399.99"},
		{192, "6299.99"},
		{256, "8199.99"},
		{320, "9999.99"},
		{384, "11699.99"},
		{448, "13299.99"},
		{512, "14999.99"},
	}

	entries := make([]*PricingEntry, 0, len(tiers))
	for _, t := range tiers {
		entries = append(entries, &PricingEntry{
			NodesCount: t.nodes,
			PriceUSD:   decimal.RequireFromString(t.price),
		})
	}
	return entries
}
