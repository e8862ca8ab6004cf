package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/swiftship/ratequote/internal/apperrors"
	"github.com/swiftship/ratequote/internal/core/domain"
)

// QuoteAggregator turns a validated package list and a receiver into three
// tier totals. Aggregation is all-or-nothing: a single unpriceable package
// aborts the whole quote.
type QuoteAggregator struct {
	rateTable *RateTableService
}

// NewQuoteAggregator creates a new QuoteAggregator.
func NewQuoteAggregator(rateTable *RateTableService) *QuoteAggregator {
	return &QuoteAggregator{rateTable: rateTable}
}

// Aggregate resolves each package's rate rows against the receiver's zone and
// sums prices per tier with decimal arithmetic. A tier with no matching rows
// sums to zero, which is a valid outcome, not a failure.
func (a *QuoteAggregator) Aggregate(ctx context.Context, country *domain.Country, receiver *domain.Receiver, packages []domain.PackageDeclaration) (domain.TierTotals, error) {
	var matched []domain.RateRow

	for i, pkg := range packages {
		rows, err := a.rateTable.FindRates(ctx, country, pkg.Type, pkg.Weight, receiver.Zone)
		if err != nil {
			return domain.TierTotals{}, err
		}
		if len(rows) == 0 {
			return domain.TierTotals{}, fmt.Errorf("%w: Rate for package %d not found", apperrors.ErrNotFound, i+1)
		}
		matched = append(matched, rows...)
	}

	totals := domain.TierTotals{
		Original:     decimal.Zero,
		Personal:     decimal.Zero,
		Business:     decimal.Zero,
		CurrencyCode: country.CurrencyCode,
	}
	for _, row := range matched {
		switch row.Tier {
		case domain.TierOriginal:
			totals.Original = totals.Original.Add(row.Price)
		case domain.TierPersonal:
			totals.Personal = totals.Personal.Add(row.Price)
		case domain.TierBusiness:
			totals.Business = totals.Business.Add(row.Price)
		}
	}

	return totals, nil
}
