package store

import (
	"context"
	"fmt"

	"github.com/alfredjeanlab/clusterconfig/internal/model"
)

// EnsureDefaultPricing seeds the node pricing catalog with the fixed tier
// table when the catalog is empty. The check and the inserts run inside one
// transaction, so calling it again (or from a second process) leaves exactly
// one copy of the catalog. Returns the number of rows inserted (0 when the
// catalog was already populated).
func EnsureDefaultPricing(ctx context.Context, s Store) (int, error) {
	inserted := 0
	err := s.RunInTransaction(ctx, func(tx Store) error {
		n, err := tx.CountPricing(ctx)
		if err != nil {
			return fmt.Errorf("count pricing: %w", err)
		}
		if n > 0 {
			return nil
		}

		entries := model.DefaultPricing()
		if err := tx.SeedPricing(ctx, entries); err != nil {
			return fmt.Errorf("seed pricing: %w", err)
		}
		inserted = len(entries)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
