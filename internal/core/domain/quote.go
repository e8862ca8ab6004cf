package domain

import "github.com/shopspring/decimal"

// PackageDeclaration is one item of a quote request. Request-scoped, never
// persisted.
type PackageDeclaration struct {
	Type   PackageType     `json:"type"`
	Weight decimal.Decimal `json:"weight"`
}

// TierTotals carries the aggregated price per tier for one quote, together
// with the quoting country's currency.
type TierTotals struct {
	Original     decimal.Decimal `json:"original"`
	Personal     decimal.Decimal `json:"personal"`
	Business     decimal.Decimal `json:"business"`
	CurrencyCode string          `json:"currencyCode"`
}

// Total returns the accumulated sum for the given tier.
func (t TierTotals) Total(tier RateTier) decimal.Decimal {
	switch tier {
	case TierOriginal:
		return t.Original
	case TierPersonal:
		return t.Personal
	case TierBusiness:
		return t.Business
	default:
		return decimal.Zero
	}
}
