package store

import (
	"context"

	"github.com/alfredjeanlab/clusterconfig/internal/model"
)

// Store defines the persistence interface for configurations and the
// node pricing catalog.
type Store interface {
	// Configurations
	CreateConfiguration(ctx context.Context, cfg *model.Configuration) error
	GetConfiguration(ctx context.Context, id int64) (*model.Configuration, error)
	ListConfigurations(ctx context.Context) ([]*model.Configuration, error)

	// Pricing catalog
	ListPricing(ctx context.Context) ([]*model.PricingEntry, error)
	CountPricing(ctx context.Context) (int, error)
	SeedPricing(ctx context.Context, entries []*model.PricingEntry) error

	// Transaction support
	RunInTransaction(ctx context.Context, fn func(tx Store) error) error

	// Lifecycle
	Close() error
}
