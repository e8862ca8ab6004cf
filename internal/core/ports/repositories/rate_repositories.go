package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swiftship/ratequote/internal/core/domain"
)

// RateReader defines read operations for rate-table data
type RateReader interface {
	// FindRateRows retrieves every rate row matching the exact
	// (packageType, weight, zone) tuple for the given country, across all
	// tiers, ordered by weight ascending. An empty slice means no rate.
	FindRateRows(ctx context.Context, countryID string, packageType domain.PackageType, weight decimal.Decimal, zone string) ([]domain.RateRow, error)

	// ListRateRowsByCountry retrieves a country's full rate table.
	ListRateRowsByCountry(ctx context.Context, countryID string) ([]domain.RateRow, error)
}

// RateWriter defines write operations for rate-table data
type RateWriter interface {
	// UpsertRateRows inserts or updates rows keyed by the natural key
	// (countryID, packageType, tier, zone, weight).
	UpsertRateRows(ctx context.Context, rows []domain.RateRow) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
