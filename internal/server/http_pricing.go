package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/alfredjeanlab/clusterconfig/internal/pricing"
)

// priceResponse is the JSON body for GET /api/pricing/nodes/{nodes_count}.
type priceResponse struct {
	NodesCount int             `json:"nodes_count"`
	PriceUSD   decimal.Decimal `json:"price_usd"`
	Currency   string          `json:"currency"`
}

// allPricesResponse is the JSON body for GET /api/pricing/all.
type allPricesResponse struct {
	PricingOptions map[int]decimal.Decimal `json:"pricing_options"`
	Currency       string                  `json:"currency"`
	TotalOptions   int                     `json:"total_options"`
}

// handleGetPrice handles GET /api/pricing/nodes/{nodes_count}.
func (s *ConfigServer) handleGetPrice(w http.ResponseWriter, r *http.Request) {
	nodesCount, err := strconv.Atoi(r.PathValue("nodes_count"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "nodes_count must be an integer")
		return
	}

	price, ok, err := s.prices.Price(nodesCount)
	if errors.Is(err, pricing.ErrNotLoaded) {
		writeError(w, http.StatusInternalServerError, "pricing cache not loaded")
		return
	}
	if !ok {
		available, _ := s.prices.NodeCounts()
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid node count %d, available options: %v", nodesCount, available))
		return
	}

	writeJSON(w, http.StatusOK, priceResponse{
		NodesCount: nodesCount,
		PriceUSD:   price,
		Currency:   "USD",
	})
}

// handleGetAllPrices handles GET /api/pricing/all.
func (s *ConfigServer) handleGetAllPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := s.prices.AllPrices()
	if errors.Is(err, pricing.ErrNotLoaded) {
		writeError(w, http.StatusInternalServerError, "pricing cache not loaded")
		return
	}

	writeJSON(w, http.StatusOK, allPricesResponse{
		PricingOptions: prices,
		Currency:       "USD",
		TotalOptions:   len(prices),
	})
}

// handleGetNodeCounts handles GET /api/pricing/nodes.
func (s *ConfigServer) handleGetNodeCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.prices.NodeCounts()
	if errors.Is(err, pricing.ErrNotLoaded) {
		writeError(w, http.StatusInternalServerError, "pricing cache not loaded")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"available_node_counts": counts,
		"total_options":         len(counts),
	})
}
