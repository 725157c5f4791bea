// Package configuration persists, fetches, and exports opaque configuration
// documents. The service never interprets a document's contents; schema
// validation, if any, belongs to the transport layer.
package configuration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alfredjeanlab/clusterconfig/internal/idgen"
	"github.com/alfredjeanlab/clusterconfig/internal/model"
	"github.com/alfredjeanlab/clusterconfig/internal/store"
)

var (
	// ErrNotFound indicates the requested configuration does not exist.
	ErrNotFound = errors.New("configuration: not found")

	// ErrNotGenerated indicates an export was attempted on a configuration
	// whose is_generated flag is false.
	ErrNotGenerated = errors.New("configuration: not generated")

	// ErrInvalidDocument indicates the submitted document is not a JSON object.
	ErrInvalidDocument = errors.New("configuration: document must be a JSON object")

	// ErrInvalidFormat indicates an unsupported export format string.
	ErrInvalidFormat = errors.New("configuration: export format must be \"json\" or \"pdf\"")
)

// Export formats.
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Export is the payload returned by Service.Export.
type Export struct {
	Format          string          `json:"format"`
	ConfigurationID string          `json:"configuration_id"`
	Data            json.RawMessage `json:"data,omitempty"`
	ExportedAt      *time.Time      `json:"exported_at,omitempty"`
	Status          string          `json:"status,omitempty"`
	Message         string          `json:"message"`
}

// Service implements the configuration persistence workflow over a store.
// It holds no cross-request state; each call is one store round-trip.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService returns a Service backed by the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// Save serializes the document, assigns a generated configuration identifier,
// and persists the record inside one transaction. On store failure the write
// is rolled back and no partial row remains visible.
func (s *Service) Save(ctx context.Context, document json.RawMessage) (*model.Configuration, error) {
	if !isJSONObject(document) {
		return nil, ErrInvalidDocument
	}

	cfg := &model.Configuration{
		ConfigurationID: idgen.Configuration(s.now().UTC()),
		Data:            document,
		IsGenerated:     true,
	}

	err := s.store.RunInTransaction(ctx, func(tx store.Store) error {
		return tx.CreateConfiguration(ctx, cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("save configuration: %w", err)
	}

	return cfg, nil
}

// Get returns the configuration with the given store-assigned id. A record
// persisted with absent data comes back as an empty JSON object; that is a
// deliberate leniency, not a validation pass.
func (s *Service) Get(ctx context.Context, id int64) (*model.Configuration, error) {
	cfg, err := s.store.GetConfiguration(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get configuration: %w", err)
	}

	if len(cfg.Data) == 0 {
		cfg.Data = json.RawMessage(`{}`)
	}
	return cfg, nil
}

// Export returns an export payload for the configuration. The "json" format
// carries the stored document verbatim plus the export timestamp; "pdf" is a
// pending placeholder until a document renderer exists. The format is checked
// before any store access.
func (s *Service) Export(ctx context.Context, id int64, format string) (*Export, error) {
	format = strings.ToLower(format)
	if format != FormatJSON && format != FormatPDF {
		return nil, ErrInvalidFormat
	}

	cfg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cfg.IsGenerated {
		return nil, ErrNotGenerated
	}

	if format == FormatPDF {
		return &Export{
			Format:          FormatPDF,
			ConfigurationID: cfg.ConfigurationID,
			Status:          "pending",
			Message:         "PDF export is not yet available",
		}, nil
	}

	exportedAt := s.now().UTC()
	return &Export{
		Format:          FormatJSON,
		ConfigurationID: cfg.ConfigurationID,
		Data:            cfg.Data,
		ExportedAt:      &exportedAt,
		Message:         "JSON export ready",
	}, nil
}

// isJSONObject reports whether raw is a syntactically valid JSON object.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
