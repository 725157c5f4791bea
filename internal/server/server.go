package server

import (
	"context"
	"log/slog"

	"github.com/alfredjeanlab/clusterconfig/internal/configuration"
	"github.com/alfredjeanlab/clusterconfig/internal/events"
	"github.com/alfredjeanlab/clusterconfig/internal/pricing"
	"github.com/alfredjeanlab/clusterconfig/internal/store"
)

// ConfigServer wires the pricing cache and configuration service to the HTTP
// transport. It owns no state of its own; every request is handled
// independently against the shared cache and store.
type ConfigServer struct {
	store     store.Store
	prices    *pricing.Cache
	configs   *configuration.Service
	publisher events.Publisher
}

// NewConfigServer returns a ConfigServer backed by the given store, cache, and publisher.
func NewConfigServer(s store.Store, cache *pricing.Cache, p events.Publisher) *ConfigServer {
	return &ConfigServer{
		store:     s,
		prices:    cache,
		configs:   configuration.NewService(s),
		publisher: p,
	}
}

// publish emits an event. Publishing is best-effort; failures are logged but
// do not block the caller.
func (s *ConfigServer) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}
