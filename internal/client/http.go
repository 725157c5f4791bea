package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClient talks to the clusterconfig HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// GetPrice returns the price for the given node count.
func (c *HTTPClient) GetPrice(ctx context.Context, nodesCount int) (*Price, error) {
	var p Price
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/pricing/nodes/%d", nodesCount), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAllPrices returns the full pricing catalog.
func (c *HTTPClient) GetAllPrices(ctx context.Context) (*PriceList, error) {
	var pl PriceList
	if err := c.doJSON(ctx, http.MethodGet, "/api/pricing/all", nil, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// GetNodeCounts returns the available node tiers.
func (c *HTTPClient) GetNodeCounts(ctx context.Context) (*NodeCounts, error) {
	var nc NodeCounts
	if err := c.doJSON(ctx, http.MethodGet, "/api/pricing/nodes", nil, &nc); err != nil {
		return nil, err
	}
	return &nc, nil
}

// SaveConfiguration persists a configuration document.
func (c *HTTPClient) SaveConfiguration(ctx context.Context, document json.RawMessage) (*SaveResult, error) {
	body := map[string]json.RawMessage{"configuration_data": document}
	var res SaveResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/configuration/save", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetConfiguration fetches a configuration by its store-assigned id.
func (c *HTTPClient) GetConfiguration(ctx context.Context, id int64) (*Configuration, error) {
	var cfg Configuration
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/configuration/%d", id), nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExportConfiguration exports a configuration in the given format.
func (c *HTTPClient) ExportConfiguration(ctx context.Context, id int64, format string) (*ExportResult, error) {
	body := map[string]string{"format": format}
	var res ExportResult
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/configuration/%d/export", id), body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Health checks the server's health endpoint.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/health", nil, nil)
}

// Ready checks the server's readiness endpoint.
func (c *HTTPClient) Ready(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/ready", nil, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content — success with no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
