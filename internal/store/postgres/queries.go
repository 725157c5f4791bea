package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alfredjeanlab/clusterconfig/internal/model"
)

// configurationColumns is the column list used for SELECT statements on the
// configurations table.
const configurationColumns = `id, configuration_id, configuration_data, is_generated, created_at, updated_at`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryCreateConfiguration(ctx context.Context, db executor, c *model.Configuration) error {
	return db.QueryRowContext(ctx, `
		INSERT INTO configurations (configuration_id, configuration_data, is_generated)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		nullString(c.ConfigurationID),
		textBytes(c.Data),
		c.IsGenerated,
	).Scan(&c.ID, &c.CreatedAt)
}

func queryGetConfiguration(ctx context.Context, db executor, id int64) (*model.Configuration, error) {
	row := db.QueryRowContext(ctx, `SELECT `+configurationColumns+` FROM configurations WHERE id = $1`, id)
	return scanConfiguration(row)
}

func queryListConfigurations(ctx context.Context, db executor) ([]*model.Configuration, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+configurationColumns+`
		FROM configurations
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list configurations: %w", err)
	}
	defer rows.Close()
	return scanConfigurations(rows)
}

func queryListPricing(ctx context.Context, db executor) ([]*model.PricingEntry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT nodes_count, price_usd, created_at, updated_at
		FROM node_pricing
		ORDER BY nodes_count ASC`)
	if err != nil {
		return nil, fmt.Errorf("list pricing: %w", err)
	}
	defer rows.Close()
	return scanPricingEntries(rows)
}

func queryCountPricing(ctx context.Context, db executor) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM node_pricing`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pricing: %w", err)
	}
	return n, nil
}

func querySeedPricing(ctx context.Context, db executor, entries []*model.PricingEntry) error {
	for _, e := range entries {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO node_pricing (nodes_count, price_usd)
			VALUES ($1, $2)`,
			e.NodesCount, e.PriceUSD,
		); err != nil {
			return fmt.Errorf("insert pricing tier %d: %w", e.NodesCount, err)
		}
	}
	return nil
}
