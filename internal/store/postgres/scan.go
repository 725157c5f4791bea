package postgres

import (
	"database/sql"
	"encoding/json"

	"github.com/alfredjeanlab/clusterconfig/internal/model"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanConfiguration scans a single row into a model.Configuration.
// The row must contain columns in the order defined by configurationColumns.
func scanConfiguration(row scannable) (*model.Configuration, error) {
	var c model.Configuration
	var (
		configurationID sql.NullString
		data            []byte
		updatedAt       sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&configurationID,
		&data,
		&c.IsGenerated,
		&c.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ConfigurationID = configurationID.String
	if len(data) > 0 {
		c.Data = json.RawMessage(data)
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		c.UpdatedAt = &t
	}

	return &c, nil
}

// scanConfigurations scans multiple rows into a slice of model.Configuration pointers.
func scanConfigurations(rows *sql.Rows) ([]*model.Configuration, error) {
	var configs []*model.Configuration
	for rows.Next() {
		c, err := scanConfiguration(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return configs, nil
}

// scanPricingEntry scans a single row into a model.PricingEntry.
func scanPricingEntry(row scannable) (*model.PricingEntry, error) {
	var e model.PricingEntry
	var updatedAt sql.NullTime
	err := row.Scan(&e.NodesCount, &e.PriceUSD, &e.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		e.UpdatedAt = &t
	}
	return &e, nil
}

// scanPricingEntries scans multiple rows into a slice of model.PricingEntry pointers.
func scanPricingEntries(rows *sql.Rows) ([]*model.PricingEntry, error) {
	var entries []*model.PricingEntry
	for rows.Next() {
		e, err := scanPricingEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// nullString converts a string to sql.NullString; empty string is null.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// textBytes converts json.RawMessage to a []byte suitable for TEXT columns.
func textBytes(m json.RawMessage) []byte {
	if len(m) == 0 {
		return nil
	}
	return []byte(m)
}
