package model

import (
	"encoding/json"
	"time"
)

// Configuration is a persisted cluster configuration document. Data is an
// opaque JSON object; the service never interprets its contents.
type Configuration struct {
	ID              int64           `json:"id"`
	ConfigurationID string          `json:"configuration_id"`
	Data            json.RawMessage `json:"configuration_data"`
	IsGenerated     bool            `json:"is_generated"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}
