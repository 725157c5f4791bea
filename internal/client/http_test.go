package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/pricing/nodes/64" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"nodes_count":64,"price_usd":"2299.99","currency":"USD"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	p, err := c.GetPrice(context.Background(), 64)
	if err != nil {
		t.Fatalf("GetPrice: %v", err)
	}
	if p.NodesCount != 64 {
		t.Errorf("NodesCount = %d", p.NodesCount)
	}
	if p.PriceUSD.String() != "2299.99" {
		t.Errorf("PriceUSD = %s", p.PriceUSD)
	}
	if p.Currency != "USD" {
		t.Errorf("Currency = %q", p.Currency)
	}
}

func TestGetAllPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pricing_options":{"4":"199.99","8":"349.99"},"currency":"USD","total_options":2}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	pl, err := c.GetAllPrices(context.Background())
	if err != nil {
		t.Fatalf("GetAllPrices: %v", err)
	}
	if pl.TotalOptions != 2 {
		t.Errorf("TotalOptions = %d", pl.TotalOptions)
	}
	if pl.PricingOptions[4].String() != "199.99" {
		t.Errorf("PricingOptions[4] = %s", pl.PricingOptions[4])
	}
}

func TestGetNodeCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"available_node_counts":[4,8,16],"total_options":3}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	nc, err := c.GetNodeCounts(context.Background())
	if err != nil {
		t.Fatalf("GetNodeCounts: %v", err)
	}
	if len(nc.AvailableNodeCounts) != 3 || nc.AvailableNodeCounts[0] != 4 {
		t.Errorf("AvailableNodeCounts = %v", nc.AvailableNodeCounts)
	}
}

func TestSaveConfiguration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/configuration/save" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			ConfigurationData json.RawMessage `json:"configuration_data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if string(req.ConfigurationData) != `{"nodes":4}` {
			t.Errorf("configuration_data = %s", req.ConfigurationData)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"configuration_id":"LOCAL-1756118400000","status":"success"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	res, err := c.SaveConfiguration(context.Background(), json.RawMessage(`{"nodes":4}`))
	if err != nil {
		t.Fatalf("SaveConfiguration: %v", err)
	}
	if res.ID != 1 || res.ConfigurationID != "LOCAL-1756118400000" {
		t.Errorf("result = %+v", res)
	}
}

func TestExportConfiguration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/configuration/7/export" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req struct {
			Format string `json:"format"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Format != "pdf" {
			t.Errorf("format = %q", req.Format)
		}
		w.Write([]byte(`{"format":"pdf","configuration_id":"LOCAL-1","status":"pending","message":"PDF export is not yet available"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	res, err := c.ExportConfiguration(context.Background(), 7, "pdf")
	if err != nil {
		t.Fatalf("ExportConfiguration: %v", err)
	}
	if res.Status != "pending" {
		t.Errorf("Status = %q", res.Status)
	}
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"configuration not found"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	_, err := c.GetConfiguration(context.Background(), 999)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "configuration not found" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestBearerTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "secret")
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
}

func TestTrailingSlashTrimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", "")
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
}
