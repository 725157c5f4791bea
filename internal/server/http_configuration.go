package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alfredjeanlab/clusterconfig/internal/configuration"
	"github.com/alfredjeanlab/clusterconfig/internal/events"
)

// saveConfigurationRequest is the JSON body for POST /api/configuration/save.
type saveConfigurationRequest struct {
	ConfigurationData json.RawMessage `json:"configuration_data"`
}

// exportRequest is the JSON body for POST /api/configuration/{id}/export.
type exportRequest struct {
	Format string `json:"format"`
}

// handleSaveConfiguration handles POST /api/configuration/save.
func (s *ConfigServer) handleSaveConfiguration(w http.ResponseWriter, r *http.Request) {
	var req saveConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.ConfigurationData) == 0 {
		writeError(w, http.StatusBadRequest, "configuration_data is required")
		return
	}

	cfg, err := s.configs.Save(r.Context(), req.ConfigurationData)
	if err != nil {
		if errors.Is(err, configuration.ErrInvalidDocument) {
			writeError(w, http.StatusBadRequest, "configuration_data must be a JSON object")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save configuration")
		return
	}

	s.publish(r.Context(), events.TopicConfigurationSaved, events.ConfigurationSaved{Configuration: cfg})

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":               cfg.ID,
		"configuration_id": cfg.ConfigurationID,
		"status":           "success",
	})
}

// handleGetConfiguration handles GET /api/configuration/{id}.
func (s *ConfigServer) handleGetConfiguration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	cfg, err := s.configs.Get(r.Context(), id)
	if errors.Is(err, configuration.ErrNotFound) {
		writeError(w, http.StatusNotFound, "configuration not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get configuration")
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// handleExportConfiguration handles POST /api/configuration/{id}/export.
func (s *ConfigServer) handleExportConfiguration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	export, err := s.configs.Export(r.Context(), id, req.Format)
	switch {
	case errors.Is(err, configuration.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, "export format must be \"json\" or \"pdf\"")
		return
	case errors.Is(err, configuration.ErrNotFound):
		writeError(w, http.StatusNotFound, "configuration not found")
		return
	case errors.Is(err, configuration.ErrNotGenerated):
		writeError(w, http.StatusBadRequest, "configuration must be generated before export")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to export configuration")
		return
	}

	s.publish(r.Context(), events.TopicConfigurationExported, events.ConfigurationExported{
		ID:              id,
		ConfigurationID: export.ConfigurationID,
		Format:          export.Format,
	})

	writeJSON(w, http.StatusOK, export)
}
