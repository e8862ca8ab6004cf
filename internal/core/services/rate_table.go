package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
)

// RateTableService answers exact-match rate lookups against a country's rate
// table, following the share-country indirection transparently.
type RateTableService struct {
	rateRepo portsrepo.RateReader
}

// NewRateTableService creates a new RateTableService.
func NewRateTableService(rateRepo portsrepo.RateReader) *RateTableService {
	return &RateTableService{rateRepo: rateRepo}
}

// FindRates returns every rate row matching the exact (packageType, weight,
// zone) tuple, across all tiers, ordered by weight ascending. Rows are read
// from the effective rate-source country: the shared country when the quoting
// country borrows its rates, otherwise the country itself. An empty slice is
// not an error; the caller decides how absence surfaces.
func (s *RateTableService) FindRates(ctx context.Context, country *domain.Country, packageType domain.PackageType, weight decimal.Decimal, zone string) ([]domain.RateRow, error) {
	sourceCountryID := country.RateSourceCountryID()

	rows, err := s.rateRepo.FindRateRows(ctx, sourceCountryID, packageType, weight, zone)
	if err != nil {
		return nil, fmt.Errorf("failed to find rate rows for country %s: %w", country.Code, err)
	}
	if rows == nil {
		rows = []domain.RateRow{}
	}
	return rows, nil
}
