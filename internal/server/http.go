package server

import (
	"encoding/json"
	"net/http"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /api/health and
// GET /api/ready) must include a valid Authorization: Bearer <token> header.
func (s *ConfigServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/configuration/save", s.handleSaveConfiguration)
	mux.HandleFunc("GET /api/configuration/{id}", s.handleGetConfiguration)
	mux.HandleFunc("POST /api/configuration/{id}/export", s.handleExportConfiguration)
	mux.HandleFunc("GET /api/pricing/nodes/{nodes_count}", s.handleGetPrice)
	mux.HandleFunc("GET /api/pricing/nodes", s.handleGetNodeCounts)
	mux.HandleFunc("GET /api/pricing/all", s.handleGetAllPrices)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/ready", s.handleReady)

	var h http.Handler = mux
	h = RequestLogMiddleware(h)
	h = RecoveryMiddleware(h)
	return AuthMiddleware(authToken, h)
}

// handleHealth handles GET /api/health.
func (s *ConfigServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady handles GET /api/ready. The process is ready once the pricing
// cache has loaded.
func (s *ConfigServer) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.prices.Loaded() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
