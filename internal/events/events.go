package events

import (
	"context"

	"github.com/alfredjeanlab/clusterconfig/internal/model"
)

// Event topic constants
const (
	TopicConfigurationSaved    = "clusterconfig.configuration.saved"
	TopicConfigurationExported = "clusterconfig.configuration.exported"
	TopicPricingLoaded         = "clusterconfig.pricing.loaded"
)

// Event types

type ConfigurationSaved struct {
	Configuration *model.Configuration `json:"configuration"`
}

type ConfigurationExported struct {
	ID              int64  `json:"id"`
	ConfigurationID string `json:"configuration_id"`
	Format          string `json:"format"`
}

type PricingLoaded struct {
	Tiers []int `json:"tiers"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
