// Package client provides an HTTP/JSON client for the clusterconfig REST API,
// used by the ccfg CLI.
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// APIError is an error response returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Price is the server's response for a single tier lookup.
type Price struct {
	NodesCount int             `json:"nodes_count"`
	PriceUSD   decimal.Decimal `json:"price_usd"`
	Currency   string          `json:"currency"`
}

// PriceList is the server's response for the full catalog.
type PriceList struct {
	PricingOptions map[int]decimal.Decimal `json:"pricing_options"`
	Currency       string                  `json:"currency"`
	TotalOptions   int                     `json:"total_options"`
}

// NodeCounts is the server's response for the tier listing.
type NodeCounts struct {
	AvailableNodeCounts []int `json:"available_node_counts"`
	TotalOptions        int   `json:"total_options"`
}

// SaveResult is the server's response after persisting a configuration.
type SaveResult struct {
	ID              int64  `json:"id"`
	ConfigurationID string `json:"configuration_id"`
	Status          string `json:"status"`
}

// Configuration mirrors the server's configuration record.
type Configuration struct {
	ID              int64           `json:"id"`
	ConfigurationID string          `json:"configuration_id"`
	Data            json.RawMessage `json:"configuration_data"`
	IsGenerated     bool            `json:"is_generated"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

// ExportResult mirrors the server's export payload.
type ExportResult struct {
	Format          string          `json:"format"`
	ConfigurationID string          `json:"configuration_id"`
	Data            json.RawMessage `json:"data,omitempty"`
	ExportedAt      *time.Time      `json:"exported_at,omitempty"`
	Status          string          `json:"status,omitempty"`
	Message         string          `json:"message"`
}
