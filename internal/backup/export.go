package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alfredjeanlab/clusterconfig/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version            string    `json:"version"`
	Type               string    `json:"type"`
	Timestamp          time.Time `json:"timestamp"`
	ConfigurationCount int       `json:"configuration_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ExportJSONL writes all configurations from the store as JSONL to w, ordered
// by store-assigned id.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	configs, err := s.ListConfigurations(ctx)
	if err != nil {
		return fmt.Errorf("list configurations: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:            "1",
		Type:               "header",
		Timestamp:          time.Now().UTC(),
		ConfigurationCount: len(configs),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for _, c := range configs {
		if len(c.Data) == 0 {
			c.Data = []byte(`{}`)
		}
		if err := enc.Encode(record{Type: "configuration", Data: c}); err != nil {
			return fmt.Errorf("encode configuration %d: %w", c.ID, err)
		}
	}

	return nil
}
